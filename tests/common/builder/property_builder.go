//go:build unit

package builder

import (
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/property"
)

// PropertyBuilder produces a property with a contiguous availability
// window, every night open at a flat price unless overridden.
type PropertyBuilder struct {
	ID            string
	Title         string
	PropertyType  string
	City          string
	Country       string
	Guests        int
	Rating        float64
	CleaningFee   *int
	WindowStart   string
	WindowDays    int
	PricePerNight int
	BookedDates   []string
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:            "PROP0001",
		Title:         "Sunny loft near the river",
		PropertyType:  "loft",
		City:          "Amsterdam",
		Country:       "Netherlands",
		Guests:        4,
		Rating:        4.5,
		WindowStart:   "2026-06-01",
		WindowDays:    30,
		PricePerNight: 100,
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) WithID(id string) *PropertyBuilder {
	b.ID = id
	return b
}

func (b *PropertyBuilder) WithCity(city, country string) *PropertyBuilder {
	b.City = city
	b.Country = country
	return b
}

func (b *PropertyBuilder) WithGuests(guests int) *PropertyBuilder {
	b.Guests = guests
	return b
}

func (b *PropertyBuilder) WithPrice(price int) *PropertyBuilder {
	b.PricePerNight = price
	return b
}

func (b *PropertyBuilder) WithCleaningFee(fee int) *PropertyBuilder {
	b.CleaningFee = &fee
	return b
}

func (b *PropertyBuilder) WithBooked(dates ...string) *PropertyBuilder {
	b.BookedDates = append(b.BookedDates, dates...)
	return b
}

func (b *PropertyBuilder) Build() *property.Property {
	cal := make(calendar.Calendar, b.WindowDays)
	day, err := calendar.ParseDate(b.WindowStart)
	if err != nil {
		panic("builder: bad window start " + b.WindowStart)
	}
	for i := 0; i < b.WindowDays; i++ {
		cal[day.String()] = calendar.DayEntry{
			Status:        calendar.StatusAvailable,
			PricePerNight: b.PricePerNight,
			MinimumNights: 1,
			MaximumNights: 30,
		}
		day = day.Next()
	}
	for _, date := range b.BookedDates {
		entry := cal[date]
		entry.Status = calendar.StatusBooked
		cal[date] = entry
	}

	return &property.Property{
		ID:                 b.ID,
		Title:              b.Title,
		PropertyType:       b.PropertyType,
		Location:           property.Location{City: b.City, Country: b.Country},
		HostID:             "USER0099",
		Capacity:           property.Capacity{Guests: b.Guests, Bedrooms: 2, Bathrooms: 1, Beds: 2},
		Amenities:          []string{"wifi", "kitchen"},
		Rating:             b.Rating,
		CancellationPolicy: "flexible",
		CleaningFee:        b.CleaningFee,
		Availability:       cal,
	}
}
