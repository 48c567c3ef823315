package repository

import (
	"errors"

	"food_ordering/internal/models"

	"gorm.io/gorm"
)

// MenuFilter narrows a restaurant's menu listing.
type MenuFilter struct {
	CategoryID    *uint
	Search        string
	AvailableOnly bool
}

type CatalogRepository interface {
	GetMenuItem(id uint) (*models.MenuItem, error)
	ListMenuItems(restaurantID uint, filter MenuFilter) ([]models.MenuItem, error)
	CreateMenuItem(item *models.MenuItem) error
	UpdateMenuItem(item *models.MenuItem) error
	ListCategories(restaurantID uint) ([]models.Category, error)
	CreateCategory(category *models.Category) error
	ListPromotions(restaurantID uint) ([]models.Promotion, error)
	CreatePromotion(promotion *models.Promotion) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) ListMenuItems(restaurantID uint, filter MenuFilter) ([]models.MenuItem, error) {
	query := r.db.Where("restaurant_id = ?", restaurantID)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AvailableOnly {
		query = query.Where("available = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var items []models.MenuItem
	err := query.Preload("Category").
		Order("sort_order ASC").Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *catalogRepository) CreateMenuItem(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *catalogRepository) UpdateMenuItem(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *catalogRepository) ListCategories(restaurantID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("sort_order ASC").
		Find(&categories).Error
	return categories, err
}

func (r *catalogRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *catalogRepository) ListPromotions(restaurantID uint) ([]models.Promotion, error) {
	query := r.db.Model(&models.Promotion{})
	if restaurantID != 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	var promotions []models.Promotion
	err := query.Find(&promotions).Error
	return promotions, err
}

func (r *catalogRepository) CreatePromotion(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}
