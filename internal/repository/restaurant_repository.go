package repository

import (
	"errors"

	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type RestaurantRepository interface {
	Create(restaurant *models.Restaurant) error
	GetByID(id uint) (*models.Restaurant, error)
	GetByOwner(userID uint) (*models.Restaurant, error)
	List(page, limit int, search string, status models.RestaurantStatus) ([]models.RestaurantSummary, int64, error)
	Update(restaurant *models.Restaurant) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *restaurantRepository) GetByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetByOwner(userID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Where("user_id = ?", userID).First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(page, limit int, search string, status models.RestaurantStatus) ([]models.RestaurantSummary, int64, error) {
	query := r.db.Model(&models.Restaurant{}).Where("status = ?", status)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []models.Restaurant
	offset := (page - 1) * limit
	err := query.Preload("Categories").Preload("MenuItems").
		Offset(offset).Limit(limit).Find(&restaurants).Error
	if err != nil {
		return nil, 0, err
	}

	// Rating aggregates are computed at read time, not maintained
	// incrementally.
	summaries := make([]models.RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		summary := models.RestaurantSummary{Restaurant: restaurant}

		var stats struct {
			Avg   float64
			Count int64
		}
		err := r.db.Model(&models.Rating{}).
			Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
			Where("restaurant_id = ?", restaurant.ID).
			Scan(&stats).Error
		if err != nil {
			return nil, 0, err
		}
		summary.AvgRating = stats.Avg
		summary.TotalRatings = int(stats.Count)

		summary.TotalMenuItems = len(restaurant.MenuItems)
		for _, item := range restaurant.MenuItems {
			if item.Available {
				summary.AvailableMenuItems++
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries, total, nil
}

func (r *restaurantRepository) Update(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}
