//go:build unit

package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/infra/store"
	"staybook/internal/seed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func generate(t *testing.T, seedValue int64) *store.Aggregate {
	t.Helper()
	g := seed.New(seedValue, nil, discard())
	start, err := calendar.ParseDate("2026-06-01")
	require.NoError(t, err)
	agg, err := g.Generate(context.Background(), seed.Params{
		Properties: 20,
		Users:      15,
		Bookings:   25,
		Reviews:    10,
		Start:      start,
	})
	require.NoError(t, err)
	return agg
}

func TestGenerate(t *testing.T) {
	agg := generate(t, 1)

	t.Run("honors requested counts", func(t *testing.T) {
		assert.Len(t, agg.Properties, 20)
		assert.Len(t, agg.Users, 15)
		assert.Len(t, agg.Bookings, 25)
		assert.LessOrEqual(t, len(agg.Reviews), 10)
	})

	t.Run("aggregate is internally consistent", func(t *testing.T) {
		require.NoError(t, agg.Validate())
	})

	t.Run("active bookings block their nights", func(t *testing.T) {
		for _, b := range agg.Bookings {
			switch b.Status {
			case booking.StatusConfirmed, booking.StatusCheckedIn, booking.StatusCompleted:
			default:
				continue
			}
			cal := agg.Properties[b.PropertyID].Availability
			r, err := b.Range()
			require.NoError(t, err, "booking %s", b.ID)
			for _, d := range r.Dates() {
				entry, ok := cal[d.String()]
				require.True(t, ok, "booking %s night %s missing from calendar", b.ID, d)
				assert.Equal(t, calendar.StatusBooked, entry.Status, "booking %s night %s", b.ID, d)
			}
		}
	})

	t.Run("reviews only cover completed stays", func(t *testing.T) {
		for _, rv := range agg.Reviews {
			b, ok := agg.Bookings[rv.BookingID]
			require.True(t, ok, "review %s references missing booking", rv.ID)
			assert.Equal(t, booking.StatusCompleted, b.Status, "review %s", rv.ID)
			assert.GreaterOrEqual(t, rv.Rating, 1)
			assert.LessOrEqual(t, rv.Rating, 5)
		}
	})

	t.Run("every user payment method is addressable", func(t *testing.T) {
		for _, b := range agg.Bookings {
			usr := agg.Users[b.UserID]
			_, ok := usr.PaymentMethods[b.PaymentMethodID]
			assert.True(t, ok, "booking %s payment method %s", b.ID, b.PaymentMethodID)
		}
	})
}

func TestGenerateDeterministic(t *testing.T) {
	first := generate(t, 42)
	second := generate(t, 42)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different aggregates (-first +second):\n%s", diff)
	}
}
