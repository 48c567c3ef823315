package models

import (
	"time"

	"gorm.io/gorm"
)

// Review targets exactly one of an order or a reservation. At most one review
// per (user, order) and per (user, reservation).
type Review struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	User          User           `json:"user,omitempty"`
	Rating        int            `json:"rating" gorm:"not null"`
	Comment       string         `json:"comment" gorm:"type:text"`
	OrderID       *uint          `json:"order_id" gorm:"index"`
	ReservationID *uint          `json:"reservation_id" gorm:"index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Rating is a restaurant-level score. Averages are computed at read time,
// never maintained incrementally.
type Rating struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	ByUserID     uint           `json:"by_user_id" gorm:"not null;index"`
	ByUser       User           `json:"by_user,omitempty" gorm:"foreignKey:ByUserID"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	Score        int            `json:"score" gorm:"not null"`
	Comment      string         `json:"comment" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
