// Package client implements the application side of the system: checkout
// initiation, the payment-gated job lifecycle with fixed-cadence polling,
// export transport, and file delivery.
package client

import (
	"sync"

	"github.com/jonathan/interview-forge/internal/types"
)

// State is the shared application state: the current interview list and the
// in-flight flag. Setters are the only mutation path; the lifecycle
// controller is the single mutator of interviews, and only it and the
// checkout initiator flip interviewing.
type State struct {
	mu           sync.Mutex
	interviews   []types.Interview
	interviewing bool
}

// NewState creates an empty state.
func NewState() *State {
	return &State{}
}

// Interviews returns a copy of the current interview list.
func (s *State) Interviews() []types.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Interview(nil), s.interviews...)
}

// Interviewing reports whether a job is currently in flight.
func (s *State) Interviewing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interviewing
}

// SetInterviews replaces the interview list.
func (s *State) SetInterviews(interviews []types.Interview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interviews = append([]types.Interview(nil), interviews...)
}

// SetInterviewing sets the in-flight flag.
func (s *State) SetInterviewing(interviewing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interviewing = interviewing
}
