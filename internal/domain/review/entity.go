package review

import (
	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/pkg/errs"
)

type Review struct {
	ID           string `json:"review_id"`
	BookingID    string `json:"booking_id"`
	UserID       string `json:"user_id"`
	PropertyID   string `json:"property_id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ReviewDate   string `json:"review_date"`
	HelpfulVotes int    `json:"helpful_votes"`
}

// NewReview echoes the user and property references from the reviewed
// booking. Only completed bookings are eligible.
func NewReview(id string, b *booking.Booking, ratingValue int, comment string, now calendar.Date) (*Review, error) {
	if !b.IsReviewable() {
		return nil, errs.Mark(
			errs.Newf("booking %s has status %s", b.ID, b.Status),
			errs.ErrBookingNotCompleted,
		)
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	return &Review{
		ID:         id,
		BookingID:  b.ID,
		UserID:     b.UserID,
		PropertyID: b.PropertyID,
		Rating:     rating.Value(),
		Comment:    comment,
		ReviewDate: now.String(),
	}, nil
}
