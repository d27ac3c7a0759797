package commands

import (
	"context"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/review"
	"staybook/internal/infra/store"
	"staybook/internal/pkg/clock"

	"github.com/jinzhu/copier"
)

type AddReviewParams struct {
	BookingID string
	Rating    int
	Comment   string
}

type ReviewCommands interface {
	AddReview(ctx context.Context, p AddReviewParams) (*review.Review, error)
}

type reviewCommandsImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewReviewCommands(st *store.Store, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{store: st, clock: clk}
}

func (uc *reviewCommandsImpl) AddReview(ctx context.Context, p AddReviewParams) (*review.Review, error) {
	var created review.Review
	err := uc.store.Within(ctx, func(tx *store.Tx) error {
		agg := tx.Aggregate()

		b, err := agg.Booking(p.BookingID)
		if err != nil {
			return err
		}

		rv, err := review.NewReview(tx.NextReviewID(), b, p.Rating, p.Comment, calendar.DateOf(uc.clock.Now()))
		if err != nil {
			return err
		}
		agg.Reviews[rv.ID] = rv

		return copier.Copy(&created, rv)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
