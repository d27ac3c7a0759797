//go:build unit

package calendar_test

import (
	"errors"
	"testing"
	"time"

	"staybook/internal/domain/calendar"
	"staybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid ISO date", func(t *testing.T) {
		d, err := calendar.ParseDate("2026-06-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-06-15", d.String())
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		for _, input := range []string{"", "2026-6-1", "15-06-2026", "2026/06/15", "not-a-date"} {
			_, err := calendar.ParseDate(input)
			assert.ErrorIs(t, err, errs.ErrInvalidDateRange, "input %q", input)
		}
	})
}

func TestDateOf(t *testing.T) {
	d := calendar.DateOf(time.Date(2026, 3, 7, 23, 59, 1, 0, time.UTC))
	assert.Equal(t, "2026-03-07", d.String())
}

func TestDateRange(t *testing.T) {
	t.Run("nights and dates exclude checkout", func(t *testing.T) {
		r, err := calendar.NewDateRange("2026-06-10", "2026-06-13")
		require.NoError(t, err)

		assert.Equal(t, 3, r.Nights())

		dates := r.Dates()
		require.Len(t, dates, 3)
		assert.Equal(t, "2026-06-10", dates[0].String())
		assert.Equal(t, "2026-06-12", dates[2].String())
	})

	t.Run("single night", func(t *testing.T) {
		r, err := calendar.NewDateRange("2026-06-10", "2026-06-11")
		require.NoError(t, err)
		assert.Equal(t, 1, r.Nights())
	})

	t.Run("checkout equal to checkin is rejected", func(t *testing.T) {
		_, err := calendar.NewDateRange("2026-06-10", "2026-06-10")
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("checkout before checkin is rejected", func(t *testing.T) {
		_, err := calendar.NewDateRange("2026-06-10", "2026-06-08")
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("malformed bound is rejected", func(t *testing.T) {
		_, err := calendar.NewDateRange("2026-06-10", "garbage")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidDateRange))
	})
}
