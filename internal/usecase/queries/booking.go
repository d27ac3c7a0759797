package queries

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/infra/store"

	"github.com/jinzhu/copier"
)

// QuoteView is the read-only cost estimate for a stay. Producing one
// never touches calendar state.
type QuoteView struct {
	PropertyID   string                  `json:"property_id"`
	CheckInDate  string                  `json:"check_in_date"`
	CheckOutDate string                  `json:"check_out_date"`
	Nights       int                     `json:"nights"`
	NightlyCosts []calendar.NightlyPrice `json:"nightly_costs"`
	booking.CostBreakdown
}

type BookingQueries interface {
	Quote(ctx context.Context, propertyID, checkIn, checkOut string) (*QuoteView, error)
	GetBooking(ctx context.Context, bookingID string) (*booking.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]*booking.Booking, error)
}

type bookingQueriesImpl struct {
	store *store.Store
}

func NewBookingQueries(st *store.Store) BookingQueries {
	return &bookingQueriesImpl{store: st}
}

func (q *bookingQueriesImpl) Quote(ctx context.Context, propertyID, checkIn, checkOut string) (*QuoteView, error) {
	var view QuoteView
	err := q.store.View(ctx, func(agg *store.Aggregate) error {
		prop, err := agg.Property(propertyID)
		if err != nil {
			return err
		}
		r, err := calendar.NewDateRange(checkIn, checkOut)
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

		view = QuoteView{
			PropertyID:    propertyID,
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			Nights:        r.Nights(),
			NightlyCosts:  series,
			CostBreakdown: booking.ComputeCost(prices, cleaningFee),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, bookingID string) (*booking.Booking, error) {
	var out booking.Booking
	err := q.store.View(ctx, func(agg *store.Aggregate) error {
		b, err := agg.Booking(bookingID)
		if err != nil {
			return err
		}
		return copier.Copy(&out, b)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUserBookings resolves the user's booking id list; ids that no
// longer resolve are skipped rather than failing the whole listing.
func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID string) ([]*booking.Booking, error) {
	var out []*booking.Booking
	err := q.store.View(ctx, func(agg *store.Aggregate) error {
		usr, err := agg.User(userID)
		if err != nil {
			return err
		}
		out = make([]*booking.Booking, 0, len(usr.Bookings))
		for _, id := range usr.Bookings {
			b, ok := agg.Bookings[id]
			if !ok {
				continue
			}
			var cp booking.Booking
			if err := copier.Copy(&cp, b); err != nil {
				return err
			}
			out = append(out, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
