//go:build unit

package review_test

import (
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/calendar"
	"staybook/internal/domain/review"
	"staybook/internal/pkg/errs"
	"staybook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewDate(t *testing.T) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDate("2026-06-20")
	require.NoError(t, err)
	return d
}

func TestNewReview(t *testing.T) {
	t.Run("completed booking accepts a review", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).Build()

		rv, err := review.NewReview("REV0001", b, 5, "Wonderful stay", reviewDate(t))
		require.NoError(t, err)

		assert.Equal(t, "REV0001", rv.ID)
		assert.Equal(t, b.ID, rv.BookingID)
		assert.Equal(t, b.UserID, rv.UserID)
		assert.Equal(t, b.PropertyID, rv.PropertyID)
		assert.Equal(t, 5, rv.Rating)
		assert.Equal(t, "2026-06-20", rv.ReviewDate)
	})

	t.Run("rating bounds", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).Build()

		for _, rating := range []int{0, 6, -1, 100} {
			_, err := review.NewReview("REV0001", b, rating, "comment", reviewDate(t))
			assert.ErrorIs(t, err, errs.ErrInvalidRating, "rating %d", rating)
		}
		for rating := 1; rating <= 5; rating++ {
			_, err := review.NewReview("REV0001", b, rating, "comment", reviewDate(t))
			assert.NoError(t, err, "rating %d", rating)
		}
	})

	t.Run("non-completed bookings are rejected", func(t *testing.T) {
		for _, status := range []booking.Status{
			booking.StatusPending,
			booking.StatusConfirmed,
			booking.StatusCheckedIn,
			booking.StatusCancelled,
		} {
			b := builder.NewBookingBuilder().WithStatus(status).Build()
			_, err := review.NewReview("REV0001", b, 4, "comment", reviewDate(t))
			assert.ErrorIs(t, err, errs.ErrBookingNotCompleted, "status %s", status)
		}
	})
}

func TestNewRating(t *testing.T) {
	r, err := review.NewRating(3)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Value())

	_, err = review.NewRating(0)
	assert.ErrorIs(t, err, errs.ErrInvalidRating)
}
