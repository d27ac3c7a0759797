package queries

import (
	"context"
	"sort"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/property"
	"staybook/internal/infra/store"

	"github.com/jinzhu/copier"
)

type SearchParams struct {
	City         string
	CheckInDate  string
	CheckOutDate string
	Guests       int
	PropertyType string
	MinPrice     int
	MaxPrice     int
}

func (p SearchParams) hasDates() bool {
	return p.CheckInDate != "" && p.CheckOutDate != ""
}

// PropertySummary is a search hit. The search_* pricing fields are only
// populated when the search carried a date range.
type PropertySummary struct {
	ID               string            `json:"property_id"`
	Title            string            `json:"title"`
	PropertyType     string            `json:"property_type"`
	Location         property.Location `json:"location"`
	Capacity         property.Capacity `json:"capacity"`
	Amenities        []string          `json:"amenities,omitempty"`
	Rating           float64           `json:"rating,omitempty"`
	SearchTotalPrice int               `json:"search_total_price,omitempty"`
	SearchAvgPrice   float64           `json:"search_avg_price,omitempty"`
}

type CityEntry struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type CatalogQueries interface {
	Search(ctx context.Context, p SearchParams) ([]*PropertySummary, error)
	GetProperty(ctx context.Context, propertyID string) (*property.Property, error)
	ListCities(ctx context.Context) ([]CityEntry, error)
}

type catalogQueriesImpl struct {
	store *store.Store
}

func NewCatalogQueries(st *store.Store) CatalogQueries {
	return &catalogQueriesImpl{store: st}
}

// Search applies plain conjunctive filters; there is no ranking beyond
// a stable id ordering.
func (q *catalogQueriesImpl) Search(ctx context.Context, p SearchParams) ([]*PropertySummary, error) {
	var r calendar.DateRange
	if p.hasDates() {
		var err error
		r, err = calendar.NewDateRange(p.CheckInDate, p.CheckOutDate)
		if err != nil {
			return nil, err
		}
	}

	var out []*PropertySummary
	err := q.store.View(ctx, func(agg *store.Aggregate) error {
		ids := make([]string, 0, len(agg.Properties))
		for id := range agg.Properties {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			prop := agg.Properties[id]

			if p.City != "" && !prop.MatchesCity(p.City) {
				continue
			}
			if p.Guests > 0 && !prop.FitsGuests(p.Guests) {
				continue
			}
			if p.PropertyType != "" && prop.PropertyType != p.PropertyType {
				continue
			}

			summary := &PropertySummary{}
			if err := copier.Copy(summary, prop); err != nil {
				return err
			}

			if p.hasDates() {
				series, err := prop.Availability.PriceSeries(r)
				if err != nil {
					continue // not bookable for the requested stay
				}
				total := 0
				for _, night := range series {
					total += night.Price
				}
				avg := float64(total) / float64(r.Nights())
				if p.MinPrice > 0 && avg < float64(p.MinPrice) {
					continue
				}
				if p.MaxPrice > 0 && avg > float64(p.MaxPrice) {
					continue
				}
				summary.SearchTotalPrice = total
				summary.SearchAvgPrice = avg
			}

			out = append(out, summary)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *catalogQueriesImpl) GetProperty(ctx context.Context, propertyID string) (*property.Property, error) {
	var out property.Property
	err := q.store.View(ctx, func(agg *store.Aggregate) error {
		prop, err := agg.Property(propertyID)
		if err != nil {
			return err
		}
		return copier.CopyWithOption(&out, prop, copier.Option{DeepCopy: true})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (q *catalogQueriesImpl) ListCities(ctx context.Context) ([]CityEntry, error) {
	var out []CityEntry
	err := q.store.View(ctx, func(agg *store.Aggregate) error {
		seen := make(map[CityEntry]struct{})
		for _, prop := range agg.Properties {
			entry := CityEntry{City: prop.Location.City, Country: prop.Location.Country}
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
			out = append(out, entry)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].City != out[j].City {
				return out[i].City < out[j].City
			}
			return out[i].Country < out[j].Country
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
