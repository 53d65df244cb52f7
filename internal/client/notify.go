package client

import "log"

// Notifier receives the one-shot notification emitted on each terminal
// transition of a job. Exactly one call is made per lifecycle run.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

// Success logs a success notification.
func (LogNotifier) Success(message string) {
	log.Printf("[notify] %s", message)
}

// Error logs an error notification.
func (LogNotifier) Error(message string) {
	log.Printf("[notify] error: %s", message)
}
