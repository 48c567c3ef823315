package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
)

// Intent is the subset of the provider's payment intent we hand back to
// callers. The client secret is returned to the browser; card data never
// touches this service.
type Intent struct {
	ID           string
	ClientSecret string
}

// ServiceInterface defines the contract for a payment processing service.
type ServiceInterface interface {
	CreateIntent(ctx context.Context, userID uint, amount float64, currency string, orderID *uint) (*Intent, error)
	Configured() bool
}

// StripeService creates payment intents through the Stripe API.
type StripeService struct {
	configured bool
}

func NewStripeService(secretKey string) *StripeService {
	if secretKey == "" {
		return &StripeService{configured: false}
	}
	stripe.Key = secretKey
	return &StripeService{configured: true}
}

func (s *StripeService) Configured() bool {
	return s.configured
}

func (s *StripeService) CreateIntent(ctx context.Context, userID uint, amount float64, currency string, orderID *uint) (*Intent, error) {
	if !s.configured {
		return nil, fmt.Errorf("stripe secret key not configured")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %f", amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))), // smallest currency unit
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata("user_id", strconv.FormatUint(uint64(userID), 10))
	if orderID != nil {
		params.AddMetadata("order_id", strconv.FormatUint(uint64(*orderID), 10))
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
