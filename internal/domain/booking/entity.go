package booking

import (
	"staybook/internal/domain/calendar"
	"staybook/internal/pkg/errs"
)

// Booking is created only by a successful reservation transaction. It is
// mutated only by cancellation or guarded status advancement, never deleted.
type Booking struct {
	ID              string `json:"booking_id"`
	UserID          string `json:"user_id"`
	PropertyID      string `json:"property_id"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	Nights          int    `json:"nights"`
	GuestCount      int    `json:"guest_count"`
	Status          Status `json:"status"`
	CostBreakdown          // flattened pricing snapshot, frozen at creation
	BookingDate        string `json:"booking_date"`
	PaymentMethodID    string `json:"payment_method_id"`
	SpecialRequests    string `json:"special_requests,omitempty"`
	CancellationPolicy string `json:"cancellation_policy,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	CancellationDate   string `json:"cancellation_date,omitempty"`
}

func NewBooking(
	id, userID, propertyID string,
	r calendar.DateRange,
	guestCount int,
	cost CostBreakdown,
	paymentMethodID, specialRequests, cancellationPolicy string,
	bookingDate calendar.Date,
) *Booking {
	return &Booking{
		ID:                 id,
		UserID:             userID,
		PropertyID:         propertyID,
		CheckInDate:        r.CheckIn().String(),
		CheckOutDate:       r.CheckOut().String(),
		Nights:             r.Nights(),
		GuestCount:         guestCount,
		Status:             StatusConfirmed,
		CostBreakdown:      cost,
		BookingDate:        bookingDate.String(),
		PaymentMethodID:    paymentMethodID,
		SpecialRequests:    specialRequests,
		CancellationPolicy: cancellationPolicy,
	}
}

// Range rebuilds the stay's date range from the persisted dates.
func (b *Booking) Range() (calendar.DateRange, error) {
	return calendar.NewDateRange(b.CheckInDate, b.CheckOutDate)
}

func (b *Booking) Cancel(reason string, now calendar.Date) error {
	switch b.Status {
	case StatusCancelled:
		return errs.Mark(errs.Newf("booking %s is already cancelled", b.ID), errs.ErrAlreadyCancelled)
	case StatusCompleted:
		return errs.Mark(errs.Newf("booking %s is completed and cannot be cancelled", b.ID), errs.ErrCannotCancelCompleted)
	}
	b.Status = StatusCancelled
	b.CancellationReason = reason
	b.CancellationDate = now.String()
	return nil
}

// AdvanceTo moves the booking along the check-in/completion path,
// rejecting any transition the state machine does not allow.
func (b *Booking) AdvanceTo(next Status) error {
	if !b.Status.CanTransitionTo(next) {
		return errs.Mark(
			errs.Newf("booking %s cannot move from %s to %s", b.ID, b.Status, next),
			errs.ErrInvalidTransition,
		)
	}
	b.Status = next
	return nil
}

func (b *Booking) IsReviewable() bool {
	return b.Status == StatusCompleted
}
