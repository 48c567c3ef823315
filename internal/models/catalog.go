package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	Name         string         `json:"name" gorm:"not null"`
	SortOrder    int            `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type MenuItem struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	CategoryID   *uint          `json:"category_id"`
	Category     *Category      `json:"category,omitempty"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Price        float64        `json:"price" gorm:"not null"`
	ImageURL     string         `json:"image_url"`
	Available    bool           `json:"available" gorm:"default:true"`
	IsFeatured   bool           `json:"is_featured" gorm:"default:false"`
	SortOrder    int            `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// MenuSection groups a restaurant's items under one of its categories.
type MenuSection struct {
	Category Category   `json:"category"`
	Items    []MenuItem `json:"items"`
}

type Promotion struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	Code         string         `json:"code" gorm:"unique;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	PercentOff   float64        `json:"percent_off"`
	Active       bool           `json:"active" gorm:"default:true"`
	ValidUntil   *time.Time     `json:"valid_until"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
