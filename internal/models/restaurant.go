package models

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	UserID      uint             `json:"user_id" gorm:"not null;index"` // owner
	User        User             `json:"user,omitempty"`
	Name        string           `json:"name" gorm:"not null"`
	Description string           `json:"description" gorm:"type:text"`
	Phone       string           `json:"phone" gorm:"not null"`
	Email       string           `json:"email"`
	Address     string           `json:"address" gorm:"not null"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	DeliveryFee float64          `json:"delivery_fee" gorm:"default:0"`
	MinOrder    float64          `json:"min_order" gorm:"default:0"`
	Status      RestaurantStatus `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"deleted_at" gorm:"index"`

	Categories []Category `json:"categories,omitempty"`
	MenuItems  []MenuItem `json:"menu_items,omitempty"`
}

type RestaurantStatus string

const (
	RestaurantActive    RestaurantStatus = "ACTIVE"
	RestaurantInactive  RestaurantStatus = "INACTIVE"
	RestaurantSuspended RestaurantStatus = "SUSPENDED"
)

// RestaurantSummary is the listing view with read-time rating aggregates.
type RestaurantSummary struct {
	Restaurant
	AvgRating          float64 `json:"avg_rating"`
	TotalRatings       int     `json:"total_ratings"`
	TotalMenuItems     int     `json:"total_menu_items"`
	AvailableMenuItems int     `json:"available_menu_items"`
}
