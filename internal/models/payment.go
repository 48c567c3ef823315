package models

import (
	"time"
)

// Payment records one payment-intent created with the provider. Card data is
// never stored; only the provider's intent id.
type Payment struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	OrderID   *uint         `json:"order_id" gorm:"index"`
	UserID    uint          `json:"user_id" gorm:"not null;index"`
	Amount    float64       `json:"amount" gorm:"not null"`
	Currency  string        `json:"currency" gorm:"type:varchar(10);not null"`
	IntentID  string        `json:"intent_id"`
	Status    IntentStatus  `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type IntentStatus string

const (
	IntentPending   IntentStatus = "PENDING"
	IntentSucceeded IntentStatus = "SUCCEEDED"
	IntentFailed    IntentStatus = "FAILED"
)
