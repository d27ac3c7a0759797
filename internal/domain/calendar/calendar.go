package calendar

import (
	"staybook/internal/pkg/errs"
)

type DayStatus string

const (
	StatusAvailable DayStatus = "available"
	StatusBooked    DayStatus = "booked"
)

// DayEntry is one night of a property's operative window. A date absent
// from the calendar map is not offered at all.
type DayEntry struct {
	Status        DayStatus `json:"status"`
	PricePerNight int       `json:"price_per_night"`
	MinimumNights int       `json:"minimum_nights,omitempty"`
	MaximumNights int       `json:"maximum_nights,omitempty"`
}

// Calendar maps ISO dates to availability and price for a single property.
type Calendar map[string]DayEntry

// DateError reports the first date that fails an availability check,
// wrapping the matching sentinel so callers can branch with errors.Is.
type DateError struct {
	Date Date
	Err  error
}

func (e *DateError) Error() string {
	return e.Err.Error() + " on " + e.Date.String()
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// CheckRange validates every night of the stay, failing on the first
// date that is either missing from the calendar or not available.
func (c Calendar) CheckRange(r DateRange) error {
	for d := r.CheckIn(); d.Before(r.CheckOut()); d = d.Next() {
		entry, ok := c[d.String()]
		if !ok {
			return &DateError{Date: d, Err: errs.ErrDateNotOffered}
		}
		if entry.Status != StatusAvailable {
			return &DateError{Date: d, Err: errs.ErrDateUnavailable}
		}
	}
	return nil
}

type NightlyPrice struct {
	Date  string `json:"date"`
	Price int    `json:"price"`
}

// PriceSeries returns the ordered nightly prices for the range. Valid
// only after CheckRange has passed.
func (c Calendar) PriceSeries(r DateRange) ([]NightlyPrice, error) {
	if err := c.CheckRange(r); err != nil {
		return nil, err
	}
	series := make([]NightlyPrice, 0, r.Nights())
	for d := r.CheckIn(); d.Before(r.CheckOut()); d = d.Next() {
		series = append(series, NightlyPrice{
			Date:  d.String(),
			Price: c[d.String()].PricePerNight,
		})
	}
	return series, nil
}

// Reserve marks every night in the range as booked. Callers must have
// validated the range with CheckRange under the same lock.
func (c Calendar) Reserve(r DateRange) {
	for d := r.CheckIn(); d.Before(r.CheckOut()); d = d.Next() {
		entry := c[d.String()]
		entry.Status = StatusBooked
		c[d.String()] = entry
	}
}

// Release marks each night in the range as available again. Dates that
// have dropped out of the operative window are skipped; release is
// best-effort and never fails.
func (c Calendar) Release(r DateRange) {
	for d := r.CheckIn(); d.Before(r.CheckOut()); d = d.Next() {
		entry, ok := c[d.String()]
		if !ok {
			continue
		}
		entry.Status = StatusAvailable
		c[d.String()] = entry
	}
}
