package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/property"
	"staybook/internal/domain/review"
	"staybook/internal/domain/user"
	"staybook/internal/infra/store"
	"staybook/internal/pkg/errs"
)

// City is a seedable market. Code drives the price multiplier for
// expensive markets.
type City struct {
	Code    string
	Name    string
	Country string
	Region  string
}

var cities = []City{
	{"NYC", "New York", "USA", "North America"},
	{"LAX", "Los Angeles", "USA", "North America"},
	{"CHI", "Chicago", "USA", "North America"},
	{"MIA", "Miami", "USA", "North America"},
	{"SFO", "San Francisco", "USA", "North America"},
	{"LON", "London", "UK", "Europe"},
	{"PAR", "Paris", "France", "Europe"},
	{"BER", "Berlin", "Germany", "Europe"},
	{"ROM", "Rome", "Italy", "Europe"},
	{"AMS", "Amsterdam", "Netherlands", "Europe"},
	{"BCN", "Barcelona", "Spain", "Europe"},
	{"TOK", "Tokyo", "Japan", "Asia"},
	{"SEO", "Seoul", "South Korea", "Asia"},
	{"BKK", "Bangkok", "Thailand", "Asia"},
	{"SIN", "Singapore", "Singapore", "Asia"},
	{"HKG", "Hong Kong", "Hong Kong", "Asia"},
	{"SYD", "Sydney", "Australia", "Oceania"},
	{"MEL", "Melbourne", "Australia", "Oceania"},
	{"DUB", "Dubai", "UAE", "Middle East"},
	{"IST", "Istanbul", "Turkey", "Europe/Asia"},
}

var propertyTypes = []string{"apartment", "house", "villa", "studio", "loft", "condo", "townhouse", "cabin", "chalet", "castle"}

var amenities = []string{
	"wifi", "kitchen", "parking", "pool", "gym", "air_conditioning",
	"heating", "tv", "washer", "dryer", "hot_tub", "fireplace",
	"balcony", "garden", "pets_allowed", "smoking_allowed", "elevator",
	"workspace", "iron", "hair_dryer", "shampoo", "breakfast", "laptop_friendly",
}

var expensiveCities = map[string]bool{"NYC": true, "LON": true, "PAR": true, "TOK": true, "SFO": true, "DUB": true}

var premiumTypes = map[string]bool{"villa": true, "house": true, "castle": true, "chalet": true}

var cancellationPolicies = []string{"flexible", "moderate", "strict", "super_strict"}

var firstNames = []string{"Alex", "Maria", "James", "Sarah", "David", "Emma", "Chris", "Lisa", "Yuki", "Omar", "Ingrid", "Mateo"}

var lastNames = []string{"Johnson", "Garcia", "Smith", "Chen", "Miller", "Wilson", "Brown", "Davis", "Tanaka", "Haddad", "Larsen", "Rossi"}

var specialRequests = []string{
	"Late check-in after 10 PM",
	"Early check-in if possible",
	"Need parking space for large vehicle",
	"Traveling with small pet (hypoallergenic)",
	"Celebrating anniversary - any special touches appreciated",
	"Business trip - need strong WiFi and workspace",
	"Traveling with elderly parent - need ground floor",
}

var cancellationReasons = []string{
	"Change of plans",
	"Found a better option",
	"Trip cancelled due to work",
	"Family emergency",
}

type Params struct {
	Properties int
	Users      int
	Bookings   int
	Reviews    int
	// Start is the first day of every property's operative window.
	Start calendar.Date
	// HorizonDays is the window length; 60 when zero.
	HorizonDays int
}

// Generator builds a complete, internally consistent aggregate: every
// booking references an existing user and property, active bookings
// have their nights marked booked, and reviews only cover completed
// stays.
type Generator struct {
	rng    *rand.Rand
	cw     Copywriter
	static *StaticCopywriter
	logger *slog.Logger
}

// New seeds the generator. cw may be nil to use canned text only.
func New(seedValue int64, cw Copywriter, logger *slog.Logger) *Generator {
	rng := rand.New(rand.NewSource(seedValue))
	return &Generator{
		rng:    rng,
		cw:     cw,
		static: NewStaticCopywriter(rng),
		logger: logger,
	}
}

func (g *Generator) Generate(ctx context.Context, p Params) (*store.Aggregate, error) {
	if p.HorizonDays <= 0 {
		p.HorizonDays = 60
	}

	agg := store.NewAggregate()

	g.logger.Info("generating properties", "count", p.Properties)
	for i := 1; i <= p.Properties; i++ {
		prop := g.generateProperty(ctx, i, p)
		agg.Properties[prop.ID] = prop
	}

	g.logger.Info("generating users", "count", p.Users)
	for i := 1; i <= p.Users; i++ {
		usr := g.generateUser(i)
		agg.Users[usr.ID] = usr
	}

	g.logger.Info("generating bookings", "count", p.Bookings)
	for i := 1; i <= p.Bookings; i++ {
		b := g.generateBooking(i, p, agg)
		agg.Bookings[b.ID] = b
	}

	reviews, err := g.generateReviews(ctx, p.Reviews, agg)
	if err != nil {
		return nil, err
	}
	for _, rv := range reviews {
		agg.Reviews[rv.ID] = rv
	}

	if err := agg.Validate(); err != nil {
		return nil, errs.Wrap(err, "generated aggregate failed validation")
	}
	return agg, nil
}

func (g *Generator) generateProperty(ctx context.Context, index int, p Params) *property.Property {
	city := cities[g.rng.Intn(len(cities))]
	propType := propertyTypes[g.rng.Intn(len(propertyTypes))]

	title, description, err := g.listing(ctx, city, propType)
	if err != nil {
		g.logger.Warn("listing generation failed, using canned text", "error", err)
		title, description, _ = g.static.PropertyListing(ctx, city, propType)
	}

	basePrice := float64(30 + g.rng.Intn(771))
	if expensiveCities[city.Code] {
		basePrice *= 1.5 + g.rng.Float64()
	}
	if premiumTypes[propType] {
		basePrice *= 1.3 + 0.7*g.rng.Float64()
	}

	var cleaningFee *int
	if g.rng.Float64() < 0.5 {
		fee := 25 + g.rng.Intn(76)
		cleaningFee = &fee
	}

	return &property.Property{
		ID:           fmt.Sprintf("PROP%04d", index),
		Title:        title,
		Description:  description,
		PropertyType: propType,
		Location: property.Location{
			City:    city.Name,
			Country: city.Country,
			Region:  city.Region,
			Address: fmt.Sprintf("%d Main Street", 1+g.rng.Intn(9999)),
		},
		HostID: fmt.Sprintf("USER%04d", 1+g.rng.Intn(max(1, p.Users))),
		Capacity: property.Capacity{
			Guests:    1 + g.rng.Intn(12),
			Bedrooms:  g.rng.Intn(7),
			Bathrooms: 1 + g.rng.Intn(4),
			Beds:      1 + g.rng.Intn(8),
		},
		Amenities:          g.sampleAmenities(),
		Rating:             3.0 + 2.0*g.rng.Float64(),
		CancellationPolicy: cancellationPolicies[g.rng.Intn(len(cancellationPolicies))],
		CleaningFee:        cleaningFee,
		Availability:       g.generateCalendar(int(basePrice), p),
	}
}

// generateCalendar fills the operative window with roughly 60% open
// nights. Weekends and high-season months carry a surcharge.
func (g *Generator) generateCalendar(basePrice int, p Params) calendar.Calendar {
	cal := make(calendar.Calendar, p.HorizonDays)
	d := p.Start
	for i := 0; i < p.HorizonDays; i++ {
		if g.rng.Float64() > 0.4 {
			price := float64(basePrice)
			if wd := d.Weekday(); wd == time.Sunday || wd == time.Saturday {
				price *= 1.2 + 0.3*g.rng.Float64()
			}
			switch d.Month() {
			case 6, 7, 8, 12:
				price *= 1.1 + 0.3*g.rng.Float64()
			}
			cal[d.String()] = calendar.DayEntry{
				Status:        calendar.StatusAvailable,
				PricePerNight: int(price),
				MinimumNights: []int{1, 2, 3, 7}[g.rng.Intn(4)],
				MaximumNights: []int{14, 30, 90}[g.rng.Intn(3)],
			}
		} else {
			cal[d.String()] = calendar.DayEntry{Status: calendar.StatusBooked}
		}
		d = d.Next()
	}
	return cal
}

func (g *Generator) sampleAmenities() []string {
	count := 8 + g.rng.Intn(11)
	perm := g.rng.Perm(len(amenities))
	out := make([]string, 0, count)
	for _, idx := range perm[:count] {
		out = append(out, amenities[idx])
	}
	return out
}

func (g *Generator) generateUser(index int) *user.User {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]

	methods := make(map[string]user.PaymentMethod)
	for j := 0; j < 1+g.rng.Intn(3); j++ {
		id := fmt.Sprintf("card_%d_%d", index, j)
		methods[id] = user.PaymentMethod{
			ID:       id,
			Type:     "credit_card",
			Brand:    []string{"visa", "mastercard", "amex", "discover"}[g.rng.Intn(4)],
			LastFour: fmt.Sprintf("%04d", 1000+g.rng.Intn(9000)),
		}
	}
	if g.rng.Float64() > 0.6 {
		id := fmt.Sprintf("gift_%d_0", index)
		methods[id] = user.PaymentMethod{
			ID:      id,
			Type:    "gift_card",
			Balance: 25 + g.rng.Intn(976),
		}
	}
	if g.rng.Float64() > 0.7 {
		id := fmt.Sprintf("paypal_%d", index)
		methods[id] = user.PaymentMethod{
			ID:       id,
			Type:     "digital_wallet",
			Provider: []string{"paypal", "apple_pay", "google_pay"}[g.rng.Intn(3)],
		}
	}

	return &user.User{
		ID: fmt.Sprintf("USER%04d", index),
		Profile: user.Profile{
			FirstName: first,
			LastName:  last,
			Email:     fmt.Sprintf("%s.%s%d@example.com", first, last, 1+g.rng.Intn(999)),
		},
		PaymentMethods:  methods,
		MembershipLevel: []string{"regular", "plus", "premium"}[g.rng.Intn(3)],
		Bookings:        []string{},
	}
}

var nightWeights = []weighted{
	{1, 15}, {2, 20}, {3, 25}, {4, 15}, {5, 10}, {6, 8}, {7, 5}, {10, 1}, {14, 1},
}

var statusWeights = []weighted{
	{0, 40}, {1, 5}, {2, 15}, {3, 35}, {4, 5},
}

var seedStatuses = []booking.Status{
	booking.StatusConfirmed,
	booking.StatusPending,
	booking.StatusCancelled,
	booking.StatusCompleted,
	booking.StatusCheckedIn,
}

func (g *Generator) generateBooking(index int, p Params, agg *store.Aggregate) *booking.Booking {
	userID := fmt.Sprintf("USER%04d", 1+g.rng.Intn(max(1, p.Users)))
	propertyID := fmt.Sprintf("PROP%04d", 1+g.rng.Intn(max(1, p.Properties)))
	usr := agg.Users[userID]
	prop := agg.Properties[propertyID]

	nights := g.pick(nightWeights)
	if nights >= p.HorizonDays {
		nights = 1
	}
	start := p.Start
	if slack := p.HorizonDays - nights; slack > 0 {
		for i := g.rng.Intn(slack); i > 0; i-- {
			start = start.Next()
		}
	}
	end := start
	for i := 0; i < nights; i++ {
		end = end.Next()
	}
	r, _ := calendar.NewDateRange(start.String(), end.String())

	prices := make([]int, 0, nights)
	for _, d := range r.Dates() {
		if entry, ok := prop.Availability[d.String()]; ok && entry.PricePerNight > 0 {
			prices = append(prices, entry.PricePerNight)
		} else {
			prices = append(prices, 80+g.rng.Intn(221))
		}
	}
	cleaningFee := booking.DefaultCleaningFee
	if prop.CleaningFee != nil {
		cleaningFee = *prop.CleaningFee
	}
	cost := booking.ComputeCost(prices, cleaningFee)

	methodIDs := make([]string, 0, len(usr.PaymentMethods))
	for id := range usr.PaymentMethods {
		methodIDs = append(methodIDs, id)
	}
	sort.Strings(methodIDs)
	paymentMethodID := methodIDs[g.rng.Intn(len(methodIDs))]

	requests := ""
	if g.rng.Float64() < 0.3 {
		requests = specialRequests[g.rng.Intn(len(specialRequests))]
	}

	b := booking.NewBooking(
		fmt.Sprintf("BOOK%04d", index),
		userID, propertyID, r,
		1+g.rng.Intn(max(1, prop.Capacity.Guests)),
		cost, paymentMethodID, requests,
		prop.CancellationPolicy, p.Start,
	)

	b.Status = seedStatuses[g.pick(statusWeights)]
	if b.Status == booking.StatusCancelled {
		b.CancellationReason = cancellationReasons[g.rng.Intn(len(cancellationReasons))]
		b.CancellationDate = p.Start.String()
	}

	usr.AppendBooking(b.ID)

	// consistency: active stays actually block their nights
	switch b.Status {
	case booking.StatusConfirmed, booking.StatusCheckedIn, booking.StatusCompleted:
		prop.Availability.Reserve(r)
	}

	return b
}

var ratingWeights = []weighted{
	{1, 2}, {2, 3}, {3, 10}, {4, 35}, {5, 50},
}

func (g *Generator) generateReviews(ctx context.Context, count int, agg *store.Aggregate) ([]*review.Review, error) {
	completed := make([]*booking.Booking, 0)
	for i := 1; ; i++ {
		b, ok := agg.Bookings[fmt.Sprintf("BOOK%04d", i)]
		if !ok {
			break
		}
		if b.IsReviewable() {
			completed = append(completed, b)
		}
	}
	if count > len(completed) {
		count = len(completed)
	}

	g.logger.Info("generating reviews", "count", count)
	out := make([]*review.Review, 0, count)
	for i := 0; i < count; i++ {
		b := completed[i]
		prop := agg.Properties[b.PropertyID]
		rating := g.pick(ratingWeights)

		comment, err := g.comment(ctx, prop.PropertyType, prop.Location.City, rating)
		if err != nil {
			g.logger.Warn("review generation failed, using canned text", "error", err)
			comment, _ = g.static.ReviewComment(ctx, prop.PropertyType, prop.Location.City, rating)
		}

		checkOut, err := calendar.ParseDate(b.CheckOutDate)
		if err != nil {
			return nil, err
		}
		reviewDate := checkOut
		for d := g.rng.Intn(14) + 1; d > 0; d-- {
			reviewDate = reviewDate.Next()
		}

		out = append(out, &review.Review{
			ID:           fmt.Sprintf("REV%04d", i+1),
			BookingID:    b.ID,
			UserID:       b.UserID,
			PropertyID:   b.PropertyID,
			Rating:       rating,
			Comment:      comment,
			ReviewDate:   reviewDate.String(),
			HelpfulVotes: g.rng.Intn(26),
		})
	}
	return out, nil
}

func (g *Generator) listing(ctx context.Context, city City, propType string) (string, string, error) {
	if g.cw == nil {
		return g.static.PropertyListing(ctx, city, propType)
	}
	return g.cw.PropertyListing(ctx, city, propType)
}

func (g *Generator) comment(ctx context.Context, propType, cityName string, rating int) (string, error) {
	if g.cw == nil {
		return g.static.ReviewComment(ctx, propType, cityName, rating)
	}
	return g.cw.ReviewComment(ctx, propType, cityName, rating)
}

type weighted struct {
	value  int
	weight int
}

func (g *Generator) pick(choices []weighted) int {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	n := g.rng.Intn(total)
	for _, c := range choices {
		n -= c.weight
		if n < 0 {
			return c.value
		}
	}
	return choices[len(choices)-1].value
}
