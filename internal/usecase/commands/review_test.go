//go:build unit

package commands_test

import (
	"context"
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/infra/store"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/tests/common/builder"
	"staybook/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewStore(t *testing.T, status booking.Status) *store.Store {
	t.Helper()
	agg := store.NewAggregate()
	agg.Users["USER0001"] = builder.NewUserBuilder().Build()
	agg.Properties["PROP0001"] = builder.NewPropertyBuilder().Build()
	agg.Bookings["BOOK0001"] = builder.NewBookingBuilder().WithStatus(status).Build()
	st, _ := storetest.NewLoadedStore(t, agg)
	return st
}

func TestAddReview(t *testing.T) {
	ctx := context.Background()

	t.Run("completed booking gets a review", func(t *testing.T) {
		st := reviewStore(t, booking.StatusCompleted)
		uc := commands.NewReviewCommands(st, fixedClock())

		rv, err := uc.AddReview(ctx, commands.AddReviewParams{
			BookingID: "BOOK0001",
			Rating:    4,
			Comment:   "Great location, would stay again.",
		})
		require.NoError(t, err)

		assert.Equal(t, "REV0001", rv.ID)
		assert.Equal(t, "BOOK0001", rv.BookingID)
		assert.Equal(t, "USER0001", rv.UserID)
		assert.Equal(t, "PROP0001", rv.PropertyID)
		assert.Equal(t, 4, rv.Rating)
		assert.Equal(t, "2026-05-01", rv.ReviewDate)

		require.NoError(t, st.View(ctx, func(agg *store.Aggregate) error {
			assert.Len(t, agg.Reviews, 1)
			return nil
		}))
	})

	t.Run("review ids increment", func(t *testing.T) {
		st := reviewStore(t, booking.StatusCompleted)
		uc := commands.NewReviewCommands(st, fixedClock())

		first, err := uc.AddReview(ctx, commands.AddReviewParams{BookingID: "BOOK0001", Rating: 5, Comment: "a"})
		require.NoError(t, err)
		second, err := uc.AddReview(ctx, commands.AddReviewParams{BookingID: "BOOK0001", Rating: 4, Comment: "b"})
		require.NoError(t, err)

		assert.Equal(t, "REV0001", first.ID)
		assert.Equal(t, "REV0002", second.ID)
	})

	t.Run("non-completed booking is rejected", func(t *testing.T) {
		for _, status := range []booking.Status{
			booking.StatusConfirmed,
			booking.StatusCheckedIn,
			booking.StatusCancelled,
		} {
			st := reviewStore(t, status)
			uc := commands.NewReviewCommands(st, fixedClock())

			_, err := uc.AddReview(ctx, commands.AddReviewParams{BookingID: "BOOK0001", Rating: 4, Comment: "x"})
			assert.ErrorIs(t, err, errs.ErrBookingNotCompleted, "status %s", status)
		}
	})

	t.Run("out-of-range ratings reach the domain check", func(t *testing.T) {
		st := reviewStore(t, booking.StatusCompleted)
		uc := commands.NewReviewCommands(st, fixedClock())

		for _, rating := range []int{0, 6} {
			_, err := uc.AddReview(ctx, commands.AddReviewParams{BookingID: "BOOK0001", Rating: rating, Comment: "x"})
			assert.ErrorIs(t, err, errs.ErrInvalidRating, "rating %d", rating)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		st := reviewStore(t, booking.StatusCompleted)
		uc := commands.NewReviewCommands(st, fixedClock())

		_, err := uc.AddReview(ctx, commands.AddReviewParams{BookingID: "BOOK0404", Rating: 4, Comment: "x"})
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
