package queries

import (
	"context"
	"sort"

	"staybook/internal/domain/review"
	"staybook/internal/infra/store"

	"github.com/jinzhu/copier"
)

type ReviewQueries interface {
	ListPropertyReviews(ctx context.Context, propertyID string) ([]*review.Review, error)
}

type reviewQueriesImpl struct {
	store *store.Store
}

func NewReviewQueries(st *store.Store) ReviewQueries {
	return &reviewQueriesImpl{store: st}
}

// ListPropertyReviews returns a property's reviews sorted by review
// date, newest first. An unknown property id yields an empty list, not
// an error, matching search semantics.
func (q *reviewQueriesImpl) ListPropertyReviews(ctx context.Context, propertyID string) ([]*review.Review, error) {
	var out []*review.Review
	err := q.store.View(ctx, func(agg *store.Aggregate) error {
		for _, rv := range agg.Reviews {
			if rv.PropertyID != propertyID {
				continue
			}
			var cp review.Review
			if err := copier.Copy(&cp, rv); err != nil {
				return err
			}
			out = append(out, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReviewDate != out[j].ReviewDate {
			return out[i].ReviewDate > out[j].ReviewDate
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
