package services

import (
	"fmt"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
)

// historyWindow is the fixed number of ledger rows returned with the balance.
const historyWindow = 20

type ApplyPointsRequest struct {
	Points        int               `json:"points" binding:"required,gt=0"`
	Type          models.RewardType `json:"type" binding:"required"`
	Description   string            `json:"description" binding:"required"`
	OrderID       *uint             `json:"order_id"`
	ReservationID *uint             `json:"reservation_id"`
}

type LoyaltySummary struct {
	Points  int                    `json:"points"`
	Rewards []models.LoyaltyReward `json:"rewards"`
}

type LoyaltyService interface {
	// Apply is the single invariant-preserving ledger append: every earn,
	// bonus and redemption goes through it. Returns the new balance and the
	// created ledger row.
	Apply(userID uint, req ApplyPointsRequest) (int, *models.LoyaltyReward, error)
	Redeem(userID uint, points int, description string) (int, *models.LoyaltyReward, error)
	Summary(userID uint) (*LoyaltySummary, error)
}

type loyaltyService struct {
	loyaltyRepo      repository.LoyaltyRepository
	notificationRepo repository.NotificationRepository
}

func NewLoyaltyService(loyaltyRepo repository.LoyaltyRepository, notificationRepo repository.NotificationRepository) LoyaltyService {
	return &loyaltyService{loyaltyRepo: loyaltyRepo, notificationRepo: notificationRepo}
}

func (s *loyaltyService) Apply(userID uint, req ApplyPointsRequest) (int, *models.LoyaltyReward, error) {
	if req.Points <= 0 {
		return 0, nil, fmt.Errorf("%w: points must be positive", models.ErrInsufficientPoints)
	}
	if !req.Type.Valid() {
		return 0, nil, fmt.Errorf("unknown reward type %q", req.Type)
	}

	reward := &models.LoyaltyReward{
		UserID:        userID,
		Points:        req.Points,
		Type:          req.Type,
		Description:   req.Description,
		OrderID:       req.OrderID,
		ReservationID: req.ReservationID,
	}

	// The balance check and the ledger append happen atomically in the
	// repository; a redemption that would go negative writes nothing.
	balance, err := s.loyaltyRepo.Apply(userID, reward.SignedPoints(), reward)
	if err != nil {
		return 0, nil, err
	}

	if req.Type == models.RewardRedeemed {
		notification := &models.Notification{
			UserID:  userID,
			Title:   "Reward redeemed",
			Message: fmt.Sprintf("Redeemed %d loyalty points for: %s", req.Points, req.Description),
			Type:    models.NotificationSuccess,
		}
		if err := s.notificationRepo.Create(notification); err != nil {
			return 0, nil, fmt.Errorf("failed to create redemption notification: %w", err)
		}
	}

	return balance, reward, nil
}

func (s *loyaltyService) Redeem(userID uint, points int, description string) (int, *models.LoyaltyReward, error) {
	return s.Apply(userID, ApplyPointsRequest{
		Points:      points,
		Type:        models.RewardRedeemed,
		Description: description,
	})
}

func (s *loyaltyService) Summary(userID uint) (*LoyaltySummary, error) {
	points, err := s.loyaltyRepo.Balance(userID)
	if err != nil {
		return nil, err
	}

	rewards, err := s.loyaltyRepo.History(userID, historyWindow)
	if err != nil {
		return nil, err
	}

	return &LoyaltySummary{Points: points, Rewards: rewards}, nil
}
