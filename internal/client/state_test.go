package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-forge/internal/types"
)

func TestState_Defaults(t *testing.T) {
	s := NewState()

	assert.Empty(t, s.Interviews())
	assert.False(t, s.Interviewing())
}

func TestState_SetInterviews(t *testing.T) {
	s := NewState()
	in := []types.Interview{{Role: "PM", QuestionOne: "a"}}

	s.SetInterviews(in)
	assert.Equal(t, in, s.Interviews())

	// Mutating the caller's slice must not leak into state.
	in[0].Role = "changed"
	assert.Equal(t, "PM", s.Interviews()[0].Role)

	// Nor the other way round.
	out := s.Interviews()
	out[0].Role = "changed again"
	assert.Equal(t, "PM", s.Interviews()[0].Role)
}

func TestState_SetInterviewing(t *testing.T) {
	s := NewState()

	s.SetInterviewing(true)
	assert.True(t, s.Interviewing())

	s.SetInterviewing(false)
	assert.False(t, s.Interviewing())
}
