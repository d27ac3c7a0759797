package request

type CalculateBookingCostRequest struct {
	PropertyID   string `json:"property_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

type CreateBookingRequest struct {
	UserID          string  `json:"user_id" binding:"required"`
	PropertyID      string  `json:"property_id" binding:"required"`
	CheckInDate     string  `json:"check_in_date" binding:"required"`
	CheckOutDate    string  `json:"check_out_date" binding:"required"`
	GuestCount      int     `json:"guest_count" binding:"required,min=1"`
	PaymentMethodID string  `json:"payment_method_id" binding:"required"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) GetSpecialRequests() string {
	if r.SpecialRequests == nil {
		return ""
	}
	return *r.SpecialRequests
}

type CancelBookingRequest struct {
	BookingID string  `json:"booking_id" binding:"required"`
	Reason    *string `json:"reason,omitempty"`
}

func (r CancelBookingRequest) GetReason() string {
	if r.Reason == nil {
		return ""
	}
	return *r.Reason
}

type BookingStatusRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

type GetBookingDetailsRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

type GetUserBookingsRequest struct {
	UserID string `json:"user_id" binding:"required"`
}
