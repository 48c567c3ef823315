package services

import (
	"fmt"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
)

// MenuView is the storefront payload for one restaurant: the flat item list,
// the category list and the items grouped per category.
type MenuView struct {
	MenuItems      []models.MenuItem    `json:"menu_items"`
	Categories     []models.Category    `json:"categories"`
	MenuByCategory []models.MenuSection `json:"menu_by_category"`
	Restaurant     *models.Restaurant   `json:"restaurant"`
}

type RestaurantPage struct {
	Restaurants []models.RestaurantSummary `json:"restaurants"`
	Page        int                        `json:"page"`
	Limit       int                        `json:"limit"`
	Total       int64                      `json:"total"`
	TotalPages  int                        `json:"total_pages"`
}

type CreateRestaurantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Phone       string  `json:"phone" binding:"required"`
	Email       string  `json:"email"`
	Address     string  `json:"address" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DeliveryFee float64 `json:"delivery_fee"`
	MinOrder    float64 `json:"min_order"`
	UserID      uint    `json:"user_id" binding:"required"`
}

type CreateMenuItemRequest struct {
	CategoryID  *uint   `json:"category_id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string  `json:"image_url"`
	Available   *bool   `json:"available"`
	IsFeatured  bool    `json:"is_featured"`
	SortOrder   int     `json:"sort_order"`
}

// UpdateMenuItemRequest carries only the fields the caller wants changed;
// nil pointers leave the stored value alone.
type UpdateMenuItemRequest struct {
	CategoryID  *uint    `json:"category_id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Available   *bool    `json:"available"`
	IsFeatured  *bool    `json:"is_featured"`
	SortOrder   *int     `json:"sort_order"`
}

type CatalogService interface {
	Menu(restaurantID uint, filter repository.MenuFilter) (*MenuView, error)
	ListRestaurants(page, limit int, search string, status models.RestaurantStatus) (*RestaurantPage, error)
	GetRestaurantByOwner(userID uint) (*models.Restaurant, error)
	CreateRestaurant(req CreateRestaurantRequest) (*models.Restaurant, error)
	CreateMenuItem(restaurantID uint, req CreateMenuItemRequest) (*models.MenuItem, error)
	UpdateMenuItem(restaurantID, itemID uint, req UpdateMenuItemRequest) (*models.MenuItem, error)
	CreateCategory(restaurantID uint, name string, sortOrder int) (*models.Category, error)
	ListPromotions(restaurantID uint) ([]models.Promotion, error)
	CreatePromotion(promotion *models.Promotion) error
}

type catalogService struct {
	catalogRepo    repository.CatalogRepository
	restaurantRepo repository.RestaurantRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository, restaurantRepo repository.RestaurantRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, restaurantRepo: restaurantRepo}
}

func (s *catalogService) Menu(restaurantID uint, filter repository.MenuFilter) (*MenuView, error) {
	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}

	items, err := s.catalogRepo.ListMenuItems(restaurantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	categories, err := s.catalogRepo.ListCategories(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	sections := make([]models.MenuSection, 0, len(categories))
	for _, category := range categories {
		section := models.MenuSection{Category: category, Items: []models.MenuItem{}}
		for _, item := range items {
			if item.CategoryID != nil && *item.CategoryID == category.ID {
				section.Items = append(section.Items, item)
			}
		}
		sections = append(sections, section)
	}

	return &MenuView{
		MenuItems:      items,
		Categories:     categories,
		MenuByCategory: sections,
		Restaurant:     restaurant,
	}, nil
}

func (s *catalogService) ListRestaurants(page, limit int, search string, status models.RestaurantStatus) (*RestaurantPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if status == "" {
		status = models.RestaurantActive
	}

	restaurants, total, err := s.restaurantRepo.List(page, limit, search, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &RestaurantPage{
		Restaurants: restaurants,
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
	}, nil
}

func (s *catalogService) GetRestaurantByOwner(userID uint) (*models.Restaurant, error) {
	return s.restaurantRepo.GetByOwner(userID)
}

func (s *catalogService) CreateRestaurant(req CreateRestaurantRequest) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		DeliveryFee: req.DeliveryFee,
		MinOrder:    req.MinOrder,
		Status:      models.RestaurantActive,
	}

	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}
	return restaurant, nil
}

func (s *catalogService) CreateMenuItem(restaurantID uint, req CreateMenuItemRequest) (*models.MenuItem, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &models.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Available:    available,
		IsFeatured:   req.IsFeatured,
		SortOrder:    req.SortOrder,
	}

	if err := s.catalogRepo.CreateMenuItem(item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

// UpdateMenuItem applies a partial update to an item after checking it
// belongs to the caller's restaurant.
func (s *catalogService) UpdateMenuItem(restaurantID, itemID uint, req UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.catalogRepo.GetMenuItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.RestaurantID != restaurantID {
		return nil, models.ErrNotFound
	}

	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price", models.ErrMissingFields)
	}

	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.IsFeatured != nil {
		item.IsFeatured = *req.IsFeatured
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}

	if err := s.catalogRepo.UpdateMenuItem(item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *catalogService) CreateCategory(restaurantID uint, name string, sortOrder int) (*models.Category, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		return nil, err
	}

	category := &models.Category{
		RestaurantID: restaurantID,
		Name:         name,
		SortOrder:    sortOrder,
	}

	if err := s.catalogRepo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *catalogService) ListPromotions(restaurantID uint) ([]models.Promotion, error) {
	return s.catalogRepo.ListPromotions(restaurantID)
}

func (s *catalogService) CreatePromotion(promotion *models.Promotion) error {
	return s.catalogRepo.CreatePromotion(promotion)
}
