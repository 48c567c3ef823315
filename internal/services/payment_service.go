package services

import (
	"context"
	"fmt"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
	"food_ordering/pkg/payment"
)

type PaymentService interface {
	// CreateIntent asks the payment provider for a payment intent and records
	// it. Only the client secret goes back to the caller.
	CreateIntent(ctx context.Context, userID uint, amount float64, orderID *uint) (string, error)
	History(userID uint) ([]models.Payment, error)
}

type paymentService struct {
	provider    payment.ServiceInterface
	paymentRepo repository.PaymentRepository
	currency    string
}

func NewPaymentService(provider payment.ServiceInterface, paymentRepo repository.PaymentRepository, currency string) PaymentService {
	return &paymentService{
		provider:    provider,
		paymentRepo: paymentRepo,
		currency:    currency,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, userID uint, amount float64, orderID *uint) (string, error) {
	if !s.provider.Configured() {
		return "", models.ErrPaymentsUnavailable
	}
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", models.ErrMissingFields)
	}

	intent, err := s.provider.CreateIntent(ctx, userID, amount, s.currency, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	record := &models.Payment{
		OrderID:  orderID,
		UserID:   userID,
		Amount:   amount,
		Currency: s.currency,
		IntentID: intent.ID,
		Status:   models.IntentPending,
	}
	if err := s.paymentRepo.Create(record); err != nil {
		return "", fmt.Errorf("failed to record payment: %w", err)
	}

	return intent.ClientSecret, nil
}

func (s *paymentService) History(userID uint) ([]models.Payment, error) {
	return s.paymentRepo.ListByUser(userID)
}
