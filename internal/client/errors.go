package client

import "fmt"

// ExportError indicates the export boundary answered with a non-success
// status.
type ExportError struct {
	Status  int
	Message string
}

func (e *ExportError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("export failed with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("export failed with status %d", e.Status)
}

// RequestError indicates a job start or status call answered with a
// non-success status. Message carries the server-provided text when the
// body was parseable.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
