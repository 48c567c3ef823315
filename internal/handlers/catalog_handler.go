package handlers

import (
	"net/http"
	"strconv"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
	"food_ordering/internal/services"
	"food_ordering/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
	log            logger.ILogger
}

func NewCatalogHandler(catalogService services.CatalogService, log logger.ILogger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, log: log}
}

func (h *CatalogHandler) Menu(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Query("restaurant_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	filter := repository.MenuFilter{
		Search:        c.Query("search"),
		AvailableOnly: c.Query("available_only") == "true",
	}
	if v := c.Query("category_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}

	menu, err := h.catalogService.Menu(uint(restaurantID), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	search := c.Query("search")
	status := models.RestaurantStatus(c.DefaultQuery("status", string(models.RestaurantActive)))

	result, err := h.catalogService.ListRestaurants(page, limit, search, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) CreateRestaurant(c *gin.Context) {
	var req services.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	restaurant, err := h.catalogService.CreateRestaurant(req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info("restaurant created", logger.Uint("restaurant_id", restaurant.ID))
	c.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
}

// CreateMenuItem adds an item to the caller's restaurant. Admins may target
// any restaurant by id.
func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	restaurantID, err := h.resolveRestaurantID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req services.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.catalogService.CreateMenuItem(restaurantID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"menu_item": item})
}

// UpdateMenuItem edits an item on the caller's restaurant. Admins may target
// any restaurant by id.
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	restaurantID, err := h.resolveRestaurantID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}

	var req services.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.catalogService.UpdateMenuItem(restaurantID, uint(itemID), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	restaurantID, err := h.resolveRestaurantID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := h.catalogService.CreateCategory(restaurantID, req.Name, req.SortOrder)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	var restaurantID uint
	if v := c.Query("restaurant_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			restaurantID = uint(id)
		}
	}

	promotions, err := h.catalogService.ListPromotions(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"promotions": promotions})
}

func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var promotion models.Promotion
	if err := c.ShouldBindJSON(&promotion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.catalogService.CreatePromotion(&promotion); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"promotion": promotion})
}

func (h *CatalogHandler) resolveRestaurantID(c *gin.Context) (uint, error) {
	switch currentUserRole(c) {
	case models.RoleAdmin:
		id, err := strconv.ParseUint(c.Query("restaurant_id"), 10, 32)
		if err != nil {
			return 0, models.ErrNotFound
		}
		return uint(id), nil
	default:
		restaurant, err := h.catalogService.GetRestaurantByOwner(currentUserID(c))
		if err != nil {
			return 0, err
		}
		return restaurant.ID, nil
	}
}
