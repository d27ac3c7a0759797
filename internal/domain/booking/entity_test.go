//go:build unit

package booking_test

import (
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/pkg/errs"
	"staybook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNewBooking(t *testing.T) {
	b := builder.NewBookingBuilder().Build()

	assert.Equal(t, booking.StatusConfirmed, b.Status)
	assert.Equal(t, 2, b.Nights)
	assert.Equal(t, "2026-06-10", b.CheckInDate)
	assert.Equal(t, "2026-06-12", b.CheckOutDate)
	assert.Equal(t, 200, b.Subtotal)
	assert.Equal(t, 295, b.Total)
}

func TestBookingCancel(t *testing.T) {
	t.Run("confirmed booking cancels", func(t *testing.T) {
		b := builder.NewBookingBuilder().Build()

		require.NoError(t, b.Cancel("Change of plans", day(t, "2026-06-01")))
		assert.Equal(t, booking.StatusCancelled, b.Status)
		assert.Equal(t, "Change of plans", b.CancellationReason)
		assert.Equal(t, "2026-06-01", b.CancellationDate)
	})

	t.Run("checked-in booking cancels", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).Build()
		assert.NoError(t, b.Cancel("", day(t, "2026-06-11")))
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).Build()
		err := b.Cancel("", day(t, "2026-06-01"))
		assert.ErrorIs(t, err, errs.ErrAlreadyCancelled)
	})

	t.Run("completed booking cannot cancel", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).Build()
		err := b.Cancel("", day(t, "2026-06-20"))
		assert.ErrorIs(t, err, errs.ErrCannotCancelCompleted)
	})
}

func TestBookingAdvanceTo(t *testing.T) {
	t.Run("confirmed to checked_in to completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().Build()

		require.NoError(t, b.AdvanceTo(booking.StatusCheckedIn))
		assert.Equal(t, booking.StatusCheckedIn, b.Status)

		require.NoError(t, b.AdvanceTo(booking.StatusCompleted))
		assert.Equal(t, booking.StatusCompleted, b.Status)
	})

	t.Run("confirmed cannot skip to completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().Build()
		err := b.AdvanceTo(booking.StatusCompleted)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, booking.StatusConfirmed, b.Status)
	})

	t.Run("cancelled admits nothing", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).Build()
		assert.ErrorIs(t, b.AdvanceTo(booking.StatusCheckedIn), errs.ErrInvalidTransition)
	})
}

func TestBookingIsReviewable(t *testing.T) {
	assert.False(t, builder.NewBookingBuilder().Build().IsReviewable())
	assert.True(t, builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).Build().IsReviewable())
}

func TestBookingRange(t *testing.T) {
	b := builder.NewBookingBuilder().Build()
	r, err := b.Range()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Nights())
}
