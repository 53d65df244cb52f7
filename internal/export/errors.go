package export

import "fmt"

// ValidationError indicates the export request itself was unusable: an
// empty record list or an unrecognized format selector.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("export validation error: %s", e.Message)
}
