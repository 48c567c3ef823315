package handlers

import (
	"net/http"

	"food_ordering/internal/services"
	"food_ordering/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentService
	log            logger.ILogger
}

func NewPaymentHandler(paymentService services.PaymentService, log logger.ILogger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, log: log}
}

// CreateIntent returns only the provider's client secret; card data never
// passes through this server.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req struct {
		Amount  float64 `json:"amount" binding:"required,gt=0"`
		OrderID *uint   `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(c.Request.Context(), currentUserID(c), req.Amount, req.OrderID)
	if err != nil {
		h.log.Error("payment intent failed", logger.Uint("user_id", currentUserID(c)), logger.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentService.History(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}
