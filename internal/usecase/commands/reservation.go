package commands

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/infra/store"
	"staybook/internal/pkg/clock"

	"github.com/jinzhu/copier"
)

type BookParams struct {
	UserID          string
	PropertyID      string
	CheckInDate     string
	CheckOutDate    string
	GuestCount      int
	PaymentMethodID string
	SpecialRequests string
}

type ReservationCommands interface {
	Book(ctx context.Context, p BookParams) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID, reason string) (*booking.Booking, error)
	CheckIn(ctx context.Context, bookingID string) (*booking.Booking, error)
	Complete(ctx context.Context, bookingID string) (*booking.Booking, error)
}

type reservationCommandsImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewReservationCommands(st *store.Store, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{store: st, clock: clk}
}

// Book validates everything up front and only then mutates: the calendar
// is reserved, the booking written, and the user's list appended under
// one write lock, so no partial state is ever observable.
func (uc *reservationCommandsImpl) Book(ctx context.Context, p BookParams) (*booking.Booking, error) {
	var created booking.Booking
	err := uc.store.Within(ctx, func(tx *store.Tx) error {
		agg := tx.Aggregate()

		usr, err := agg.User(p.UserID)
		if err != nil {
			return err
		}
		prop, err := agg.Property(p.PropertyID)
		if err != nil {
			return err
		}
		if !prop.FitsGuests(p.GuestCount) {
			return capacityExceeded(prop, p.GuestCount)
		}
		if !usr.HasPaymentMethod(p.PaymentMethodID) {
			return paymentMethodNotFound(p.UserID, p.PaymentMethodID)
		}

		r, err := calendar.NewDateRange(p.CheckInDate, p.CheckOutDate)
		if err != nil {
			return err
		}
		series, err := prop.Availability.PriceSeries(r)
		if err != nil {
			return err
		}

		prices := make([]int, len(series))
		for i, night := range series {
			prices[i] = night.Price
		}
		cleaningFee := 0
		if prop.CleaningFee != nil {
			cleaningFee = *prop.CleaningFee
		}
		cost := booking.ComputeCost(prices, cleaningFee)

		b := booking.NewBooking(
			tx.NextBookingID(),
			p.UserID,
			p.PropertyID,
			r,
			p.GuestCount,
			cost,
			p.PaymentMethodID,
			p.SpecialRequests,
			prop.CancellationPolicy,
			calendar.DateOf(uc.clock.Now()),
		)

		prop.Availability.Reserve(r)
		agg.Bookings[b.ID] = b
		usr.AppendBooking(b.ID)

		return copier.Copy(&created, b)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Cancel releases the booking's date range on the owning property's
// calendar. Release is best-effort: dates that have left the operative
// window are skipped, and a missing property no longer blocks the
// cancellation itself.
func (uc *reservationCommandsImpl) Cancel(ctx context.Context, bookingID, reason string) (*booking.Booking, error) {
	var cancelled booking.Booking
	err := uc.store.Within(ctx, func(tx *store.Tx) error {
		agg := tx.Aggregate()

		b, err := agg.Booking(bookingID)
		if err != nil {
			return err
		}
		if err := b.Cancel(reason, calendar.DateOf(uc.clock.Now())); err != nil {
			return err
		}

		if prop, ok := agg.Properties[b.PropertyID]; ok {
			if r, rerr := b.Range(); rerr == nil {
				prop.Availability.Release(r)
			}
		}

		return copier.Copy(&cancelled, b)
	})
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

func (uc *reservationCommandsImpl) CheckIn(ctx context.Context, bookingID string) (*booking.Booking, error) {
	return uc.advance(ctx, bookingID, booking.StatusCheckedIn)
}

func (uc *reservationCommandsImpl) Complete(ctx context.Context, bookingID string) (*booking.Booking, error) {
	return uc.advance(ctx, bookingID, booking.StatusCompleted)
}

func (uc *reservationCommandsImpl) advance(ctx context.Context, bookingID string, next booking.Status) (*booking.Booking, error) {
	var advanced booking.Booking
	err := uc.store.Within(ctx, func(tx *store.Tx) error {
		b, err := tx.Aggregate().Booking(bookingID)
		if err != nil {
			return err
		}
		if err := b.AdvanceTo(next); err != nil {
			return err
		}
		return copier.Copy(&advanced, b)
	})
	if err != nil {
		return nil, err
	}
	return &advanced, nil
}
