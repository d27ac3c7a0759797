package queries

import (
	"context"

	"staybook/internal/domain/user"
	"staybook/internal/infra/store"

	"github.com/jinzhu/copier"
)

type UserQueries interface {
	GetUser(ctx context.Context, userID string) (*user.User, error)
}

type userQueriesImpl struct {
	store *store.Store
}

func NewUserQueries(st *store.Store) UserQueries {
	return &userQueriesImpl{store: st}
}

func (q *userQueriesImpl) GetUser(ctx context.Context, userID string) (*user.User, error) {
	var out user.User
	err := q.store.View(ctx, func(agg *store.Aggregate) error {
		usr, err := agg.User(userID)
		if err != nil {
			return err
		}
		return copier.CopyWithOption(&out, usr, copier.Option{DeepCopy: true})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
