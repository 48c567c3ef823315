package repository

import (
	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type LoyaltyRepository interface {
	// Apply adjusts the user's balance by the signed delta and appends the
	// ledger entry, atomically. Returns the new balance.
	Apply(userID uint, delta int, reward *models.LoyaltyReward) (int, error)
	Balance(userID uint) (int, error)
	History(userID uint, limit int) ([]models.LoyaltyReward, error)
}

type loyaltyRepository struct {
	db *gorm.DB
}

func NewLoyaltyRepository(db *gorm.DB) LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

// Apply performs the balance update and the ledger insert in one transaction.
// The guarded UPDATE keeps the balance non-negative under concurrent
// requests; zero rows affected means the user is missing or the balance
// would go negative, and no ledger row is written.
func (r *loyaltyRepository) Apply(userID uint, delta int, reward *models.LoyaltyReward) (int, error) {
	var balance int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND loyalty_points + ? >= 0", userID, delta).
			UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return models.ErrNotFound
			}
			return models.ErrInsufficientPoints
		}

		if err := tx.Create(reward).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.Select("loyalty_points").First(&user, userID).Error; err != nil {
			return err
		}
		balance = user.LoyaltyPoints
		return nil
	})
	return balance, err
}

func (r *loyaltyRepository) Balance(userID uint) (int, error) {
	var user models.User
	err := r.db.Select("loyalty_points").First(&user, userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, models.ErrNotFound
		}
		return 0, err
	}
	return user.LoyaltyPoints, nil
}

func (r *loyaltyRepository) History(userID uint, limit int) ([]models.LoyaltyReward, error) {
	var rewards []models.LoyaltyReward
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rewards).Error
	return rewards, err
}
