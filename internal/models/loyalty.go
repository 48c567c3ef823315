package models

import (
	"time"
)

// LoyaltyReward is one ledger entry. Rows are append-only; the signed effect
// on the balance is derived from Type, not stored.
type LoyaltyReward struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"not null;index"`
	Points        int        `json:"points" gorm:"not null"` // magnitude, always >= 0
	Type          RewardType `json:"type" gorm:"type:varchar(20);not null"`
	Description   string     `json:"description" gorm:"type:text"`
	OrderID       *uint      `json:"order_id"`
	ReservationID *uint      `json:"reservation_id"`
	CreatedAt     time.Time  `json:"created_at"`
}

type RewardType string

const (
	RewardEarned   RewardType = "EARNED"
	RewardRedeemed RewardType = "REDEEMED"
	RewardBonus    RewardType = "BONUS"
)

func (t RewardType) Valid() bool {
	switch t {
	case RewardEarned, RewardRedeemed, RewardBonus:
		return true
	}
	return false
}

// SignedPoints is the entry's effect on the balance: REDEEMED subtracts,
// everything else adds.
func (r LoyaltyReward) SignedPoints() int {
	if r.Type == RewardRedeemed {
		return -r.Points
	}
	return r.Points
}
