// Package payments fronts the payment boundary: it turns a customer profile
// into a redirectable checkout session and redeems paid sessions back into
// the profile that bought them.
package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/jonathan/interview-forge/internal/types"
)

// Provider creates and redeems checkout sessions. A session is redeemable
// exactly once it has been paid; redemption yields the profile that was
// attached at creation time.
type Provider interface {
	CreateSession(ctx context.Context, profile types.Profile, returnURL string) (*types.CheckoutSession, error)
	RedeemSession(ctx context.Context, sessionID string) (*types.Profile, error)
}

// StripeProvider implements Provider against Stripe Checkout. The profile
// rides along as session metadata so redemption needs no storage of its own.
type StripeProvider struct {
	priceCents int64
	currency   string
}

// NewStripeProvider configures the Stripe client and returns a provider.
// Price is per interview; the desired count becomes the line item quantity.
func NewStripeProvider(apiKey string, priceCents int64, currency string) *StripeProvider {
	stripe.Key = apiKey
	return &StripeProvider{priceCents: priceCents, currency: currency}
}

// CreateSession creates a payment-mode checkout session for the profile.
func (p *StripeProvider) CreateSession(_ context.Context, profile types.Profile, returnURL string) (*types.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.currency),
					UnitAmount: stripe.Int64(p.priceCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Customer discovery interview questions"),
					},
				},
				Quantity: stripe.Int64(int64(profile.DesiredCount)),
			},
		},
		SuccessURL: stripe.String(returnURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(returnURL),
	}
	params.AddMetadata("role", profile.Role)
	params.AddMetadata("industry", profile.Industry)
	params.AddMetadata("range", profile.ExperienceRange)
	params.AddMetadata("employee_range", profile.CompanySizeRange)
	params.AddMetadata("interviews", strconv.Itoa(profile.DesiredCount))

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &types.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// RedeemSession verifies the session is paid and rebuilds the profile from
// its metadata.
func (p *StripeProvider) RedeemSession(_ context.Context, sessionID string) (*types.Profile, error) {
	s, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, &ErrSessionNotFound{SessionID: sessionID}
	}
	if s.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, &ErrSessionNotPaid{SessionID: sessionID}
	}

	count, err := strconv.Atoi(s.Metadata["interviews"])
	if err != nil {
		return nil, fmt.Errorf("checkout session %s has malformed metadata: %w", sessionID, err)
	}

	return &types.Profile{
		Role:             s.Metadata["role"],
		Industry:         s.Metadata["industry"],
		ExperienceRange:  s.Metadata["range"],
		CompanySizeRange: s.Metadata["employee_range"],
		DesiredCount:     count,
	}, nil
}
