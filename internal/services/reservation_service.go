package services

import (
	"fmt"
	"time"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
)

type CreateReservationRequest struct {
	Date      time.Time
	Time      string
	PartySize int
	Phone     string
	Notes     string
}

type ReservationService interface {
	Create(userID uint, req CreateReservationRequest) (*models.Reservation, error)
	ListByUser(userID uint) ([]models.Reservation, error)
	UpdateStatus(id uint, status models.ReservationStatus) (*models.Reservation, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	slotCapacity    int
}

func NewReservationService(reservationRepo repository.ReservationRepository, slotCapacity int) ReservationService {
	return &reservationService{reservationRepo: reservationRepo, slotCapacity: slotCapacity}
}

// Create books a table for the requested slot. The capacity check and the
// insert run atomically in the repository, so a full slot cannot be
// overbooked by concurrent requests.
func (s *reservationService) Create(userID uint, req CreateReservationRequest) (*models.Reservation, error) {
	if req.Date.IsZero() || req.Time == "" || req.PartySize <= 0 {
		return nil, fmt.Errorf("%w: date, time and party size", models.ErrMissingFields)
	}

	// Compare dates only; a reservation for later today is fine.
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, models.ErrPastDate
	}

	reservation := &models.Reservation{
		UserID:    userID,
		Date:      date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Phone:     req.Phone,
		Notes:     req.Notes,
		Status:    models.ReservationPending,
	}

	if err := s.reservationRepo.CreateWithCapacity(reservation, s.slotCapacity); err != nil {
		return nil, err
	}

	return reservation, nil
}

func (s *reservationService) ListByUser(userID uint) ([]models.Reservation, error) {
	return s.reservationRepo.ListByUser(userID)
}

func (s *reservationService) UpdateStatus(id uint, status models.ReservationStatus) (*models.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown reservation status %q", status)
	}

	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	reservation.Status = status
	if err := s.reservationRepo.Update(reservation); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	return reservation, nil
}
