package calendar

import (
	"time"

	"staybook/internal/pkg/errs"
)

// Dates are ISO YYYY-MM-DD strings throughout; no timezone is modeled.
const ISODate = "2006-01-02"

type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Date{}, errs.Mark(errs.Newf("malformed date %q", s), errs.ErrInvalidDateRange)
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.t.Format(ISODate)
}

func (d Date) Next() Date {
	return Date{t: d.t.AddDate(0, 0, 1)}
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DateRange is the half-open interval [checkIn, checkOut): the checkout
// night itself is never charged or blocked.
type DateRange struct {
	checkIn  Date
	checkOut Date
}

func NewDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	if !in.Before(out) {
		return DateRange{}, errs.Mark(
			errs.Newf("check-out date %s must be after check-in date %s", checkOut, checkIn),
			errs.ErrInvalidDateRange,
		)
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func (r DateRange) CheckIn() Date  { return r.checkIn }
func (r DateRange) CheckOut() Date { return r.checkOut }

func (r DateRange) Nights() int {
	return int(r.checkOut.t.Sub(r.checkIn.t).Hours() / 24)
}

// Dates returns every night of the stay in order, checkout excluded.
func (r DateRange) Dates() []Date {
	dates := make([]Date, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.Next() {
		dates = append(dates, d)
	}
	return dates
}
