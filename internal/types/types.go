// Package types provides the wire and domain types shared by the server,
// the client, and the CLI.
package types

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// numericRangePattern matches range fields such as "2-5" or "51-200".
var numericRangePattern = regexp.MustCompile(`^[0-9]+-[0-9]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "numrange" backs the experience and company-size range fields.
	_ = v.RegisterValidation("numrange", func(fl validator.FieldLevel) bool {
		return numericRangePattern.MatchString(fl.Field().String())
	})
	return v
}

// Profile is an ideal customer profile submitted through the intake form.
// It is immutable once submitted: created from form input and consumed once
// when a checkout session is requested.
type Profile struct {
	Role             string `json:"role" validate:"required"`
	Industry         string `json:"industry" validate:"required"`
	ExperienceRange  string `json:"range" validate:"required,numrange"`
	CompanySizeRange string `json:"employee_range" validate:"required,numrange"`
	DesiredCount     int    `json:"interviews" validate:"required,min=5,max=20"`
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	return validate.Struct(p)
}

// CheckoutSession is the payment boundary's answer to a Profile: an opaque
// session token plus the URL the user is redirected to. It is read once by
// the redirect and has no further lifecycle here.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Interview is one generated interview question set.
type Interview struct {
	Role          string `json:"role"`
	Industry      string `json:"industry"`
	QuestionOne   string `json:"question_one"`
	QuestionTwo   string `json:"question_two"`
	QuestionThree string `json:"question_three"`
	QuestionFour  string `json:"question_four"`
	QuestionFive  string `json:"question_five"`
}

// JobStatus is the lifecycle state of a generation job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Terminal reports whether no further status change can follow.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job is a server-tracked asynchronous unit of work producing a batch of
// Interview records. Progress is meaningful only while pending; Result is
// present iff completed; ErrorMessage is present iff failed.
type Job struct {
	ID           string      `json:"jobId"`
	Status       JobStatus   `json:"status"`
	Progress     int         `json:"progress,omitempty"`
	Result       []Interview `json:"data,omitempty"`
	ErrorMessage string      `json:"error,omitempty"`
}

// CheckoutRequest is the body of POST /checkout-session.
type CheckoutRequest struct {
	Profile
	ReturnURL string `json:"returnUrl" validate:"required,url"`
}

// Validate validates the CheckoutRequest using the validator.
func (r *CheckoutRequest) Validate() error {
	return validate.Struct(r)
}

// StartJobRequest is the body of POST /jobs. The session token is the
// checkout session redeemed to start the job.
type StartJobRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// Validate validates the StartJobRequest using the validator.
func (r *StartJobRequest) Validate() error {
	return validate.Struct(r)
}

// StartJobResponse is the body returned when a job has been started.
type StartJobResponse struct {
	JobID string `json:"jobId"`
}

// ExportRequest is the body of POST /export/interviews.
type ExportRequest struct {
	Interviews []Interview `json:"interviews"`
}

// String renders a short human-readable summary of the profile.
func (p *Profile) String() string {
	return fmt.Sprintf("%s in %s (%s yrs, %s employees, %d interviews)",
		p.Role, p.Industry, p.ExperienceRange, p.CompanySizeRange, p.DesiredCount)
}
