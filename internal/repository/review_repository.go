package repository

import (
	"errors"

	"food_ordering/internal/models"

	"gorm.io/gorm"
)

// ReviewFilter selects reviews by exactly one optional dimension.
type ReviewFilter struct {
	OrderID       *uint
	ReservationID *uint
	MenuItemID    *uint
}

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByUserAndOrder(userID, orderID uint) (*models.Review, error)
	FindByUserAndReservation(userID, reservationID uint) (*models.Review, error)
	List(filter ReviewFilter) ([]models.Review, error)
	CreateRating(rating *models.Rating) error
	FindRating(userID, restaurantID uint) (*models.Rating, error)
	ListRatings(restaurantID uint) ([]models.Rating, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByUserAndOrder(userID, orderID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND order_id = ?", userID, orderID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndReservation(userID, reservationID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND reservation_id = ?", userID, reservationID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List(filter ReviewFilter) ([]models.Review, error) {
	query := r.db.Preload("User")

	switch {
	case filter.MenuItemID != nil:
		// Reviews of a menu item are the reviews of orders containing it.
		sub := r.db.Model(&models.OrderItem{}).
			Select("order_id").
			Where("menu_item_id = ?", *filter.MenuItemID)
		query = query.Where("order_id IN (?)", sub)
	case filter.OrderID != nil:
		query = query.Where("order_id = ?", *filter.OrderID)
	case filter.ReservationID != nil:
		query = query.Where("reservation_id = ?", *filter.ReservationID)
	}

	var reviews []models.Review
	err := query.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) CreateRating(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

func (r *reviewRepository) FindRating(userID, restaurantID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("by_user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *reviewRepository) ListRatings(restaurantID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Preload("ByUser").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}
