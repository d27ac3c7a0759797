package api

import (
	"errors"
	"net/http"

	"staybook/internal/domain/calendar"
	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps domain sentinels onto HTTP statuses. Every 4xx
// carries the offending identifier or date in the detail field so a
// client can render an actionable message.
func respondError(c *gin.Context, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, errs.ErrPropertyNotFound):
		status, msg = http.StatusNotFound, "Property not found"
	case errors.Is(err, errs.ErrUserNotFound):
		status, msg = http.StatusNotFound, "User not found"
	case errors.Is(err, errs.ErrBookingNotFound):
		status, msg = http.StatusNotFound, "Booking not found"
	case errors.Is(err, errs.ErrInvalidDateRange):
		status, msg = http.StatusUnprocessableEntity, "Invalid date range"
	case errors.Is(err, errs.ErrCapacityExceeded):
		status, msg = http.StatusUnprocessableEntity, "Guest count exceeds property capacity"
	case errors.Is(err, errs.ErrPaymentMethodNotFound):
		status, msg = http.StatusUnprocessableEntity, "Payment method not found for user"
	case errors.Is(err, errs.ErrInvalidRating):
		status, msg = http.StatusUnprocessableEntity, "Rating must be between 1 and 5"
	case errors.Is(err, errs.ErrDateNotOffered):
		status, msg = http.StatusConflict, "Property not offered on requested date"
	case errors.Is(err, errs.ErrDateUnavailable):
		status, msg = http.StatusConflict, "Property not available on requested date"
	case errors.Is(err, errs.ErrAlreadyCancelled):
		status, msg = http.StatusConflict, "Booking is already cancelled"
	case errors.Is(err, errs.ErrCannotCancelCompleted):
		status, msg = http.StatusConflict, "Cannot cancel completed booking"
	case errors.Is(err, errs.ErrBookingNotCompleted):
		status, msg = http.StatusConflict, "Can only review completed bookings"
	case errors.Is(err, errs.ErrInvalidTransition):
		status, msg = http.StatusConflict, "Invalid booking status transition"
	case errors.Is(err, errs.ErrStoreUnwritable):
		status, msg = http.StatusInternalServerError, "Mutation applied but could not be persisted"
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	var detail any
	var dateErr *calendar.DateError
	if errors.As(err, &dateErr) {
		detail = gin.H{"date": dateErr.Date.String()}
	} else {
		detail = err.Error()
	}

	httperr.AbortWithError(c, status, err, msg, detail)
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
}
