package handlers

import (
	"net/http"
	"strconv"
	"time"

	"food_ordering/internal/models"
	"food_ordering/internal/services"
	"food_ordering/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationService services.ReservationService
	log                logger.ILogger
}

func NewReservationHandler(reservationService services.ReservationService, log logger.ILogger) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService, log: log}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req struct {
		Date      string `json:"date" binding:"required"`
		Time      string `json:"time" binding:"required"`
		PartySize int    `json:"party_size" binding:"required,gt=0"`
		Phone     string `json:"phone"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	reservation, err := h.reservationService.Create(currentUserID(c), services.CreateReservationRequest{
		Date:      date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Phone:     req.Phone,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info("reservation created",
		logger.Uint("reservation_id", reservation.ID),
		logger.String("date", req.Date),
		logger.String("time", req.Time))
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	reservations, err := h.reservationService.ListByUser(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	var req struct {
		Status models.ReservationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reservation, err := h.reservationService.UpdateStatus(uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}
