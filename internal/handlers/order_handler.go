package handlers

import (
	"net/http"
	"strconv"

	"food_ordering/internal/models"
	"food_ordering/internal/services"
	"food_ordering/pkg/logger"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService   services.OrderService
	catalogService services.CatalogService
	log            logger.ILogger
}

func NewOrderHandler(orderService services.OrderService, catalogService services.CatalogService, log logger.ILogger) *OrderHandler {
	return &OrderHandler{orderService: orderService, catalogService: catalogService, log: log}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreateOrder(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info("order created",
		logger.Uint("order_id", order.ID),
		logger.Uint("user_id", order.UserID),
		logger.Float64("total", order.Total))
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.orderService.ListUserOrders(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ListForRestaurant returns the orders of the restaurant owned by the caller.
func (h *OrderHandler) ListForRestaurant(c *gin.Context) {
	restaurant, err := h.catalogService.GetRestaurantByOwner(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := h.orderService.ListRestaurantOrders(restaurant.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ListForDrivers returns orders ready for pickup.
func (h *OrderHandler) ListForDrivers(c *gin.Context) {
	orders, err := h.orderService.ListOrdersForPickup()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info("order status updated",
		logger.Uint("order_id", order.ID),
		logger.String("status", string(order.Status)))
	c.JSON(http.StatusOK, gin.H{"order": order})
}
