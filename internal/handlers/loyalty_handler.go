package handlers

import (
	"net/http"

	"food_ordering/internal/services"
	"food_ordering/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyaltyService services.LoyaltyService
	log            logger.ILogger
}

func NewLoyaltyHandler(loyaltyService services.LoyaltyService, log logger.ILogger) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService, log: log}
}

// Summary returns the caller's balance and the most recent ledger entries.
func (h *LoyaltyHandler) Summary(c *gin.Context) {
	summary, err := h.loyaltyService.Summary(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Apply appends one ledger entry of any type. Redemptions that would drive
// the balance negative are rejected here just like on the redeem endpoint.
func (h *LoyaltyHandler) Apply(c *gin.Context) {
	var req services.ApplyPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	points, reward, err := h.loyaltyService.Apply(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points, "reward": reward})
}

func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	var req struct {
		Points      int    `json:"points" binding:"required,gt=0"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	points, reward, err := h.loyaltyService.Redeem(currentUserID(c), req.Points, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info("points redeemed",
		logger.Uint("user_id", currentUserID(c)),
		logger.Int("points", req.Points))
	c.JSON(http.StatusOK, gin.H{"points": points, "reward": reward})
}
