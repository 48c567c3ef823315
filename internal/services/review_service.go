package services

import (
	"errors"
	"fmt"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
)

type CreateReviewRequest struct {
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
	OrderID       *uint  `json:"order_id"`
	ReservationID *uint  `json:"reservation_id"`
}

type ReviewService interface {
	Create(userID uint, req CreateReviewRequest) (*models.Review, error)
	List(filter repository.ReviewFilter) ([]models.Review, error)
	RateRestaurant(userID, restaurantID uint, score int, comment string) (*models.Rating, error)
	ListRatings(restaurantID uint) ([]models.Rating, error)
}

type reviewService struct {
	reviewRepo      repository.ReviewRepository
	orderRepo       repository.OrderRepository
	reservationRepo repository.ReservationRepository
	restaurantRepo  repository.RestaurantRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	reservationRepo repository.ReservationRepository,
	restaurantRepo repository.RestaurantRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:      reviewRepo,
		orderRepo:       orderRepo,
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
	}
}

// Create gates a review on the referenced order being DELIVERED or the
// referenced reservation being COMPLETED, and on no earlier review by the
// same user for the same target.
func (s *reviewService) Create(userID uint, req CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, models.ErrInvalidRating
	}
	if (req.OrderID == nil) == (req.ReservationID == nil) {
		return nil, models.ErrReviewTarget
	}

	if req.OrderID != nil {
		if _, err := s.reviewRepo.FindByUserAndOrder(userID, *req.OrderID); err == nil {
			return nil, models.ErrDuplicateReview
		} else if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}

		order, err := s.orderRepo.GetByID(*req.OrderID)
		if err != nil {
			return nil, err
		}
		if order.UserID != userID {
			// Not found rather than forbidden, to avoid leaking other
			// users' order ids.
			return nil, models.ErrNotFound
		}
		if order.Status != models.OrderDelivered {
			return nil, models.ErrReviewNotEligible
		}
	}

	if req.ReservationID != nil {
		if _, err := s.reviewRepo.FindByUserAndReservation(userID, *req.ReservationID); err == nil {
			return nil, models.ErrDuplicateReview
		} else if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}

		reservation, err := s.reservationRepo.GetByID(*req.ReservationID)
		if err != nil {
			return nil, err
		}
		if reservation.UserID != userID {
			return nil, models.ErrNotFound
		}
		if reservation.Status != models.ReservationCompleted {
			return nil, models.ErrReviewNotEligible
		}
	}

	review := &models.Review{
		UserID:        userID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		OrderID:       req.OrderID,
		ReservationID: req.ReservationID,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (s *reviewService) List(filter repository.ReviewFilter) ([]models.Review, error) {
	return s.reviewRepo.List(filter)
}

func (s *reviewService) RateRestaurant(userID, restaurantID uint, score int, comment string) (*models.Rating, error) {
	if score < 1 || score > 5 {
		return nil, models.ErrInvalidRating
	}

	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		return nil, err
	}

	if _, err := s.reviewRepo.FindRating(userID, restaurantID); err == nil {
		return nil, models.ErrDuplicateRating
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	rating := &models.Rating{
		ByUserID:     userID,
		RestaurantID: restaurantID,
		Score:        score,
		Comment:      comment,
	}

	if err := s.reviewRepo.CreateRating(rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	return rating, nil
}

func (s *reviewService) ListRatings(restaurantID uint) ([]models.Rating, error) {
	return s.reviewRepo.ListRatings(restaurantID)
}
