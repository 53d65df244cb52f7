package payments

import "fmt"

// ErrSessionNotFound indicates the checkout session does not exist.
type ErrSessionNotFound struct {
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("checkout session not found: %s", e.SessionID)
}

// ErrSessionNotPaid indicates the checkout session has not been paid yet.
type ErrSessionNotPaid struct {
	SessionID string
}

func (e *ErrSessionNotPaid) Error() string {
	return fmt.Sprintf("checkout session not paid: %s", e.SessionID)
}
