package services

import (
	"context"
	"testing"

	"food_ordering/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntentRecordsPayment(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(&stubPaymentProvider{configured: true}, repo, "sar")

	orderID := uint(7)
	secret, err := svc.CreateIntent(context.Background(), 1, 59.0, &orderID)
	require.NoError(t, err)
	assert.Equal(t, "pi_test_secret", secret)

	require.Len(t, repo.payments, 1)
	record := repo.payments[0]
	assert.Equal(t, uint(1), record.UserID)
	assert.Equal(t, 59.0, record.Amount)
	assert.Equal(t, "sar", record.Currency)
	assert.Equal(t, "pi_test", record.IntentID)
	assert.Equal(t, models.IntentPending, record.Status)
}

func TestCreateIntentWhenUnconfigured(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(&stubPaymentProvider{configured: false}, repo, "sar")

	_, err := svc.CreateIntent(context.Background(), 1, 59.0, nil)
	assert.ErrorIs(t, err, models.ErrPaymentsUnavailable)
	assert.Empty(t, repo.payments)
}

func TestPaymentHistoryIsPerUser(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := NewPaymentService(&stubPaymentProvider{configured: true}, repo, "sar")

	_, err := svc.CreateIntent(context.Background(), 1, 59.0, nil)
	require.NoError(t, err)
	_, err = svc.CreateIntent(context.Background(), 2, 20.0, nil)
	require.NoError(t, err)

	payments, err := svc.History(1)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 59.0, payments[0].Amount)
}
