//go:build unit

package builder

import (
	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
)

type BookingBuilder struct {
	ID              string
	UserID          string
	PropertyID      string
	CheckInDate     string
	CheckOutDate    string
	GuestCount      int
	Status          booking.Status
	NightlyPrice    int
	CleaningFee     int
	PaymentMethodID string
	BookingDate     string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              "BOOK0001",
		UserID:          "USER0001",
		PropertyID:      "PROP0001",
		CheckInDate:     "2026-06-10",
		CheckOutDate:    "2026-06-12",
		GuestCount:      2,
		Status:          booking.StatusConfirmed,
		NightlyPrice:    100,
		CleaningFee:     booking.DefaultCleaningFee,
		PaymentMethodID: "card_1_0",
		BookingDate:     "2026-05-01",
	}
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUser(userID string) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithProperty(propertyID string) *BookingBuilder {
	b.PropertyID = propertyID
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) Build() *booking.Booking {
	r, err := calendar.NewDateRange(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		panic("builder: bad booking dates " + b.CheckInDate + " " + b.CheckOutDate)
	}
	prices := make([]int, r.Nights())
	for i := range prices {
		prices[i] = b.NightlyPrice
	}
	bookingDate, err := calendar.ParseDate(b.BookingDate)
	if err != nil {
		panic("builder: bad booking date " + b.BookingDate)
	}

	bk := booking.NewBooking(
		b.ID, b.UserID, b.PropertyID, r,
		b.GuestCount,
		booking.ComputeCost(prices, b.CleaningFee),
		b.PaymentMethodID, "", "flexible",
		bookingDate,
	)
	bk.Status = b.Status
	return bk
}
