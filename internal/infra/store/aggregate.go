package store

import (
	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/property"
	"staybook/internal/domain/review"
	"staybook/internal/domain/user"
	"staybook/internal/pkg/errs"
)

// Aggregate is the full in-memory collection for a process: every
// property, user, booking and review, keyed by id. It is also the
// persisted schema of the blob store.
type Aggregate struct {
	Properties map[string]*property.Property `json:"properties"`
	Users      map[string]*user.User         `json:"users"`
	Bookings   map[string]*booking.Booking   `json:"bookings"`
	Reviews    map[string]*review.Review     `json:"reviews"`
}

func NewAggregate() *Aggregate {
	return &Aggregate{
		Properties: make(map[string]*property.Property),
		Users:      make(map[string]*user.User),
		Bookings:   make(map[string]*booking.Booking),
		Reviews:    make(map[string]*review.Review),
	}
}

func (a *Aggregate) Property(id string) (*property.Property, error) {
	p, ok := a.Properties[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("property %s not found", id), errs.ErrPropertyNotFound)
	}
	return p, nil
}

func (a *Aggregate) User(id string) (*user.User, error) {
	u, ok := a.Users[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("user %s not found", id), errs.ErrUserNotFound)
	}
	return u, nil
}

func (a *Aggregate) Booking(id string) (*booking.Booking, error) {
	b, ok := a.Bookings[id]
	if !ok {
		return nil, errs.Mark(errs.Newf("booking %s not found", id), errs.ErrBookingNotFound)
	}
	return b, nil
}

// Validate is the fail-fast schema check run at load time, so that a
// malformed blob is rejected up front instead of surfacing as missing
// keys deep inside an operation.
func (a *Aggregate) Validate() error {
	for id, p := range a.Properties {
		if p == nil || p.ID != id {
			return errs.Newf("property %s: id mismatch", id)
		}
		for date, entry := range p.Availability {
			if _, err := calendar.ParseDate(date); err != nil {
				return errs.Newf("property %s: malformed calendar date %q", id, date)
			}
			if entry.Status != calendar.StatusAvailable && entry.Status != calendar.StatusBooked {
				return errs.Newf("property %s: invalid day status %q on %s", id, entry.Status, date)
			}
			if entry.PricePerNight < 0 {
				return errs.Newf("property %s: negative price on %s", id, date)
			}
		}
	}
	for id, u := range a.Users {
		if u == nil || u.ID != id {
			return errs.Newf("user %s: id mismatch", id)
		}
	}
	for id, b := range a.Bookings {
		if b == nil || b.ID != id {
			return errs.Newf("booking %s: id mismatch", id)
		}
		if !b.Status.IsValid() {
			return errs.Newf("booking %s: invalid status %q", id, b.Status)
		}
		if _, err := b.Range(); err != nil {
			return errs.Wrap(err, "booking "+id)
		}
		if _, ok := a.Users[b.UserID]; !ok {
			return errs.Newf("booking %s: unknown user %s", id, b.UserID)
		}
		if _, ok := a.Properties[b.PropertyID]; !ok {
			return errs.Newf("booking %s: unknown property %s", id, b.PropertyID)
		}
	}
	for id, r := range a.Reviews {
		if r == nil || r.ID != id {
			return errs.Newf("review %s: id mismatch", id)
		}
		if r.Rating < 1 || r.Rating > 5 {
			return errs.Newf("review %s: rating %d out of range", id, r.Rating)
		}
	}
	return nil
}
