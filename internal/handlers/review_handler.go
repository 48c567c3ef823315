package handlers

import (
	"net/http"
	"strconv"

	"food_ordering/internal/repository"
	"food_ordering/internal/services"
	"food_ordering/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	log           logger.ILogger
}

func NewReviewHandler(reviewService services.ReviewService, log logger.ILogger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, log: log}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	review, err := h.reviewService.Create(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *ReviewHandler) List(c *gin.Context) {
	filter := repository.ReviewFilter{}
	if v := c.Query("order_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			orderID := uint(id)
			filter.OrderID = &orderID
		}
	}
	if v := c.Query("reservation_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			reservationID := uint(id)
			filter.ReservationID = &reservationID
		}
	}
	if v := c.Query("menu_item_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			menuItemID := uint(id)
			filter.MenuItemID = &menuItemID
		}
	}

	reviews, err := h.reviewService.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) CreateRating(c *gin.Context) {
	var req struct {
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		Score        int    `json:"score" binding:"required"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rating, err := h.reviewService.RateRestaurant(currentUserID(c), req.RestaurantID, req.Score, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}

func (h *ReviewHandler) ListRatings(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Query("restaurant_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	ratings, err := h.reviewService.ListRatings(uint(restaurantID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
