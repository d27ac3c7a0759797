//go:build unit

package queries_test

import (
	"context"
	"testing"

	"staybook/internal/domain/calendar"
	"staybook/internal/infra/store"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"
	"staybook/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogStore(t *testing.T) *store.Store {
	t.Helper()
	agg := store.NewAggregate()
	agg.Properties["PROP0001"] = builder.NewPropertyBuilder().
		WithID("PROP0001").WithCity("Amsterdam", "Netherlands").WithGuests(2).WithPrice(100).Build()
	agg.Properties["PROP0002"] = builder.NewPropertyBuilder().
		WithID("PROP0002").WithCity("Amsterdam", "Netherlands").WithGuests(6).WithPrice(250).Build()
	agg.Properties["PROP0003"] = builder.NewPropertyBuilder().
		WithID("PROP0003").WithCity("Tokyo", "Japan").WithGuests(4).WithPrice(180).
		WithBooked("2026-06-10").Build()
	st, _ := storetest.NewLoadedStore(t, agg)
	return st
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	q := queries.NewCatalogQueries(catalogStore(t))

	t.Run("no filters returns everything in id order", func(t *testing.T) {
		hits, err := q.Search(ctx, queries.SearchParams{})
		require.NoError(t, err)
		require.Len(t, hits, 3)
		assert.Equal(t, "PROP0001", hits[0].ID)
		assert.Equal(t, "PROP0003", hits[2].ID)
		// no dates means no search pricing
		assert.Zero(t, hits[0].SearchTotalPrice)
	})

	t.Run("city filter is a case-insensitive substring", func(t *testing.T) {
		hits, err := q.Search(ctx, queries.SearchParams{City: "amster"})
		require.NoError(t, err)
		assert.Len(t, hits, 2)
	})

	t.Run("guest filter", func(t *testing.T) {
		hits, err := q.Search(ctx, queries.SearchParams{Guests: 5})
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "PROP0002", hits[0].ID)
	})

	t.Run("date filter drops properties with blocked nights", func(t *testing.T) {
		hits, err := q.Search(ctx, queries.SearchParams{
			CheckInDate:  "2026-06-10",
			CheckOutDate: "2026-06-12",
		})
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, 200, hits[0].SearchTotalPrice)
		assert.Equal(t, 100.0, hits[0].SearchAvgPrice)
	})

	t.Run("price band filters on nightly average", func(t *testing.T) {
		hits, err := q.Search(ctx, queries.SearchParams{
			CheckInDate:  "2026-06-01",
			CheckOutDate: "2026-06-03",
			MinPrice:     150,
			MaxPrice:     200,
		})
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "PROP0003", hits[0].ID)
	})

	t.Run("invalid dates fail the search", func(t *testing.T) {
		_, err := q.Search(ctx, queries.SearchParams{
			CheckInDate:  "2026-06-12",
			CheckOutDate: "2026-06-10",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}

func TestGetProperty(t *testing.T) {
	ctx := context.Background()
	st := catalogStore(t)
	q := queries.NewCatalogQueries(st)

	t.Run("returns a deep copy", func(t *testing.T) {
		prop, err := q.GetProperty(ctx, "PROP0001")
		require.NoError(t, err)
		assert.Equal(t, "PROP0001", prop.ID)
		assert.Len(t, prop.Availability, 30)

		// mutating the copy must not leak into the store
		entry := prop.Availability["2026-06-05"]
		entry.Status = calendar.StatusBooked
		prop.Availability["2026-06-05"] = entry

		require.NoError(t, st.View(ctx, func(agg *store.Aggregate) error {
			stored, err := agg.Property("PROP0001")
			require.NoError(t, err)
			assert.Equal(t, calendar.StatusAvailable, stored.Availability["2026-06-05"].Status)
			return nil
		}))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetProperty(ctx, "PROP0404")
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
	})
}

func TestListCities(t *testing.T) {
	q := queries.NewCatalogQueries(catalogStore(t))

	cities, err := q.ListCities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, queries.CityEntry{City: "Amsterdam", Country: "Netherlands"}, cities[0])
	assert.Equal(t, queries.CityEntry{City: "Tokyo", Country: "Japan"}, cities[1])
}
