package request

type AddReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Rating    *int   `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

type GetPropertyReviewsRequest struct {
	PropertyID string `json:"property_id" binding:"required"`
}
