package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/interview-forge/internal/export"
	"github.com/jonathan/interview-forge/internal/jobs"
	"github.com/jonathan/interview-forge/internal/payments"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation *export.ValidationError
		invalid    *jobs.ErrInvalidProfile
		notFound   *payments.ErrSessionNotFound
		notPaid    *payments.ErrSessionNotPaid
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &notPaid):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
