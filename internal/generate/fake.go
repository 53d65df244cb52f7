package generate

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jonathan/interview-forge/internal/types"
)

// FakeGenerator is a deterministic Generator used in tests and when no API
// key is configured. Each call yields a numbered question set.
type FakeGenerator struct {
	calls atomic.Int64

	// Err, when set, is returned by every call.
	Err error
}

// NewFakeGenerator creates a fake generator.
func NewFakeGenerator() *FakeGenerator {
	return &FakeGenerator{}
}

// GenerateInterview returns a numbered, profile-stamped question set.
func (g *FakeGenerator) GenerateInterview(_ context.Context, profile types.Profile) (types.Interview, error) {
	if g.Err != nil {
		return types.Interview{}, g.Err
	}

	n := g.calls.Add(1)
	question := func(i int) string {
		return fmt.Sprintf("Question %d for %s #%d: what does a typical week look like?", i, profile.Role, n)
	}
	return types.Interview{
		Role:          profile.Role,
		Industry:      profile.Industry,
		QuestionOne:   question(1),
		QuestionTwo:   question(2),
		QuestionThree: question(3),
		QuestionFour:  question(4),
		QuestionFive:  question(5),
	}, nil
}

// Calls reports how many question sets have been generated.
func (g *FakeGenerator) Calls() int64 {
	return g.calls.Load()
}

// Close is a no-op.
func (g *FakeGenerator) Close() error {
	return nil
}
