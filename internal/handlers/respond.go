package handlers

import (
	"errors"
	"net/http"

	"food_ordering/internal/models"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain sentinels onto HTTP status codes. Conflicts
// (full slot, duplicate review, insufficient points, illegal transition)
// are 409; anything unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthorized),
		errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrSlotFull),
		errors.Is(err, models.ErrDuplicateReview),
		errors.Is(err, models.ErrDuplicateRating),
		errors.Is(err, models.ErrInsufficientPoints),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrReviewNotEligible):
		return http.StatusConflict
	case errors.Is(err, models.ErrEmptyOrder),
		errors.Is(err, models.ErrRestaurantInactive),
		errors.Is(err, models.ErrItemUnavailable),
		errors.Is(err, models.ErrItemWrongRestaurant),
		errors.Is(err, models.ErrBelowMinOrder),
		errors.Is(err, models.ErrMissingFields),
		errors.Is(err, models.ErrPastDate),
		errors.Is(err, models.ErrInvalidRating),
		errors.Is(err, models.ErrReviewTarget),
		errors.Is(err, models.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrPaymentsUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

func currentUserRole(c *gin.Context) models.UserRole {
	if role, ok := c.Get("user_role"); ok {
		if r, ok := role.(models.UserRole); ok {
			return r
		}
	}
	return ""
}
