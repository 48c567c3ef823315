package services

import (
	"math/rand"
	"testing"

	"food_ordering/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoyaltyFixture(balance int) (LoyaltyService, *fakeLoyaltyRepo, *fakeNotificationRepo) {
	loyaltyRepo := newFakeLoyaltyRepo()
	notifications := newFakeNotificationRepo()
	loyaltyRepo.balances[1] = balance
	return NewLoyaltyService(loyaltyRepo, notifications), loyaltyRepo, notifications
}

func TestApplyEarnAndRedeem(t *testing.T) {
	svc, repo, _ := newLoyaltyFixture(0)

	balance, reward, err := svc.Apply(1, ApplyPointsRequest{
		Points:      100,
		Type:        models.RewardEarned,
		Description: "welcome bonus",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, balance)
	assert.Equal(t, 100, reward.SignedPoints())

	balance, reward, err = svc.Apply(1, ApplyPointsRequest{
		Points:      40,
		Type:        models.RewardRedeemed,
		Description: "free drink",
	})
	require.NoError(t, err)
	assert.Equal(t, 60, balance)
	assert.Equal(t, -40, reward.SignedPoints())
	assert.Len(t, repo.ledger, 2)
}

func TestRedeemRejectedWhenInsufficient(t *testing.T) {
	svc, repo, notifications := newLoyaltyFixture(40)

	_, _, err := svc.Redeem(1, 50, "big reward")
	assert.ErrorIs(t, err, models.ErrInsufficientPoints)

	// Balance untouched, no ledger row, no notification.
	balance, err := repo.Balance(1)
	require.NoError(t, err)
	assert.Equal(t, 40, balance)
	assert.Empty(t, repo.ledger)
	assert.Empty(t, notifications.notifications)
}

func TestRedeemCreatesNotification(t *testing.T) {
	svc, _, notifications := newLoyaltyFixture(100)

	balance, _, err := svc.Redeem(1, 30, "dessert on the house")
	require.NoError(t, err)
	assert.Equal(t, 70, balance)

	require.Len(t, notifications.notifications, 1)
	assert.Equal(t, models.NotificationSuccess, notifications.notifications[0].Type)
	assert.Contains(t, notifications.notifications[0].Message, "30")
}

func TestEarnDoesNotNotify(t *testing.T) {
	svc, _, notifications := newLoyaltyFixture(0)

	_, _, err := svc.Apply(1, ApplyPointsRequest{Points: 10, Type: models.RewardEarned, Description: "order"})
	require.NoError(t, err)
	_, _, err = svc.Apply(1, ApplyPointsRequest{Points: 5, Type: models.RewardBonus, Description: "promo"})
	require.NoError(t, err)

	assert.Empty(t, notifications.notifications)
}

func TestApplyRejectsBadInput(t *testing.T) {
	svc, _, _ := newLoyaltyFixture(10)

	_, _, err := svc.Apply(1, ApplyPointsRequest{Points: 0, Type: models.RewardEarned, Description: "x"})
	assert.Error(t, err)

	_, _, err = svc.Apply(1, ApplyPointsRequest{Points: 5, Type: "GIFTED", Description: "x"})
	assert.Error(t, err)
}

// The balance must always equal the signed sum of the ledger, under any
// sequence of earn/bonus/redeem events.
func TestBalanceMatchesLedgerUnderRandomSequence(t *testing.T) {
	svc, repo, _ := newLoyaltyFixture(0)
	rng := rand.New(rand.NewSource(1))

	types := []models.RewardType{models.RewardEarned, models.RewardRedeemed, models.RewardBonus}
	for i := 0; i < 500; i++ {
		req := ApplyPointsRequest{
			Points:      rng.Intn(50) + 1,
			Type:        types[rng.Intn(len(types))],
			Description: "random event",
		}

		current, err := repo.Balance(1)
		require.NoError(t, err)

		_, _, err = svc.Apply(1, req)
		if req.Type == models.RewardRedeemed && req.Points > current {
			require.ErrorIs(t, err, models.ErrInsufficientPoints)
			continue
		}
		require.NoError(t, err)
	}

	signedSum := 0
	for _, entry := range repo.ledger {
		signedSum += entry.SignedPoints()
	}

	balance, err := repo.Balance(1)
	require.NoError(t, err)
	assert.Equal(t, signedSum, balance)
	assert.GreaterOrEqual(t, balance, 0)
}

func TestSummaryReturnsRecentHistory(t *testing.T) {
	svc, _, _ := newLoyaltyFixture(0)

	for i := 0; i < 25; i++ {
		_, _, err := svc.Apply(1, ApplyPointsRequest{Points: 1, Type: models.RewardEarned, Description: "order"})
		require.NoError(t, err)
	}

	summary, err := svc.Summary(1)
	require.NoError(t, err)
	assert.Equal(t, 25, summary.Points)
	assert.Len(t, summary.Rewards, 20) // fixed window, newest first
}

func TestApplyUnknownUser(t *testing.T) {
	svc, _, _ := newLoyaltyFixture(0)

	_, _, err := svc.Apply(42, ApplyPointsRequest{Points: 5, Type: models.RewardEarned, Description: "x"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
