package api

import (
	"net/http"

	"staybook/internal/handler/dto/request"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	reservations commands.ReservationCommands
	bookings     queries.BookingQueries
}

func NewBookingHandler(reservations commands.ReservationCommands, bookings queries.BookingQueries) *BookingHandler {
	return &BookingHandler{reservations: reservations, bookings: bookings}
}

// CalculateBookingCost quotes a stay without reserving anything.
func (h *BookingHandler) CalculateBookingCost(c *gin.Context) {
	var req request.CalculateBookingCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := h.bookings.Quote(c.Request.Context(), req.PropertyID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.reservations.Book(c.Request.Context(), commands.BookParams{
		UserID:          req.UserID,
		PropertyID:      req.PropertyID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		GuestCount:      req.GuestCount,
		PaymentMethodID: req.PaymentMethodID,
		SpecialRequests: req.GetSpecialRequests(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req request.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.reservations.Cancel(c.Request.Context(), req.BookingID, req.GetReason())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) CheckInBooking(c *gin.Context) {
	var req request.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.reservations.CheckIn(c.Request.Context(), req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	var req request.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.reservations.Complete(c.Request.Context(), req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) GetBookingDetails(c *gin.Context) {
	var req request.GetBookingDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.bookings.GetBooking(c.Request.Context(), req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	var req request.GetUserBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.bookings.ListUserBookings(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list, "count": len(list)})
}
