package payments

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/interview-forge/internal/types"
)

// FakeProvider is an in-memory Provider used in tests and when no Stripe key
// is configured. Every session it creates counts as paid immediately.
type FakeProvider struct {
	mu       sync.Mutex
	profiles map[string]types.Profile

	// CreateErr, when set, fails session creation.
	CreateErr error
}

// NewFakeProvider creates an empty fake provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{profiles: make(map[string]types.Profile)}
}

// CreateSession mints a fake session token and remembers the profile.
func (p *FakeProvider) CreateSession(_ context.Context, profile types.Profile, returnURL string) (*types.CheckoutSession, error) {
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}

	id := "cs_test_" + uuid.New().String()
	p.mu.Lock()
	p.profiles[id] = profile
	p.mu.Unlock()

	return &types.CheckoutSession{
		ID:  id,
		URL: returnURL + "?session_id=" + id,
	}, nil
}

// RedeemSession returns the profile attached to a known session.
func (p *FakeProvider) RedeemSession(_ context.Context, sessionID string) (*types.Profile, error) {
	p.mu.Lock()
	profile, ok := p.profiles[sessionID]
	p.mu.Unlock()

	if !ok {
		return nil, &ErrSessionNotFound{SessionID: sessionID}
	}
	return &profile, nil
}
