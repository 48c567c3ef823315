package models

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	UserID    uint              `json:"user_id" gorm:"not null;index"`
	Date      time.Time         `json:"date" gorm:"not null;index:idx_reservation_slot"`
	Time      string            `json:"time" gorm:"not null;index:idx_reservation_slot"` // slot label, e.g. "19:00"
	PartySize int               `json:"party_size" gorm:"not null"`
	Phone     string            `json:"phone"`
	Notes     string            `json:"notes" gorm:"type:text"`
	Status    ReservationStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `json:"deleted_at" gorm:"index"`
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}
