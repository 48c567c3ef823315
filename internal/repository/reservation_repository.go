package repository

import (
	"errors"

	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type ReservationRepository interface {
	// CreateWithCapacity inserts the reservation unless the slot already holds
	// capacity active reservations. Check and insert run in one transaction.
	CreateWithCapacity(reservation *models.Reservation, capacity int) error
	GetByID(id uint) (*models.Reservation, error)
	ListByUser(userID uint) ([]models.Reservation, error)
	Update(reservation *models.Reservation) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateWithCapacity(reservation *models.Reservation, capacity int) error {
	activeStatuses := []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		// Serialize all bookings for this (date, time) slot on a transaction
		// advisory lock. Row locks cannot carry this invariant: an empty slot
		// has no rows to lock, and a transaction that waited on row locks
		// still counts from its original snapshot.
		err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?::text || ?))",
			reservation.Date, reservation.Time).Error
		if err != nil {
			return err
		}

		var active int64
		err = tx.Model(&models.Reservation{}).
			Where("date = ? AND time = ? AND status IN ?",
				reservation.Date, reservation.Time, activeStatuses).
			Count(&active).Error
		if err != nil {
			return err
		}

		if active >= int64(capacity) {
			return models.ErrSlotFull
		}

		return tx.Create(reservation).Error
	})
}

func (r *reservationRepository) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) ListByUser(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("user_id = ?", userID).
		Order("date ASC").Order("time ASC").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) Update(reservation *models.Reservation) error {
	return r.db.Save(reservation).Error
}
