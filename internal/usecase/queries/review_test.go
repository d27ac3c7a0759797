//go:build unit

package queries_test

import (
	"context"
	"testing"

	"staybook/internal/domain/review"
	"staybook/internal/infra/store"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReview(agg *store.Aggregate, id, propertyID, date string, rating int) {
	agg.Reviews[id] = &review.Review{
		ID:         id,
		BookingID:  "BOOK0001",
		UserID:     "USER0001",
		PropertyID: propertyID,
		Rating:     rating,
		Comment:    "fine",
		ReviewDate: date,
	}
}

func TestListPropertyReviews(t *testing.T) {
	ctx := context.Background()

	agg := store.NewAggregate()
	seedReview(agg, "REV0001", "PROP0001", "2026-06-01", 4)
	seedReview(agg, "REV0002", "PROP0001", "2026-06-15", 5)
	seedReview(agg, "REV0003", "PROP0002", "2026-06-20", 3)
	seedReview(agg, "REV0004", "PROP0001", "2026-06-15", 2)
	st, _ := storetest.NewLoadedStore(t, agg)
	q := queries.NewReviewQueries(st)

	t.Run("newest first, id breaks ties", func(t *testing.T) {
		list, err := q.ListPropertyReviews(ctx, "PROP0001")
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "REV0004", list[0].ID)
		assert.Equal(t, "REV0002", list[1].ID)
		assert.Equal(t, "REV0001", list[2].ID)
	})

	t.Run("unknown property yields empty list", func(t *testing.T) {
		list, err := q.ListPropertyReviews(ctx, "PROP0404")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
