//go:build unit

package queries_test

import (
	"context"
	"testing"

	"staybook/internal/infra/store"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"
	"staybook/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	agg := store.NewAggregate()
	agg.Users["USER0001"] = builder.NewUserBuilder().Build()
	st, _ := storetest.NewLoadedStore(t, agg)
	q := queries.NewUserQueries(st)

	t.Run("returns a copy", func(t *testing.T) {
		usr, err := q.GetUser(ctx, "USER0001")
		require.NoError(t, err)
		assert.Equal(t, "USER0001", usr.ID)
		assert.Equal(t, "Maria", usr.Profile.FirstName)

		usr.PaymentMethods["injected"] = usr.PaymentMethods["card_1_0"]

		require.NoError(t, st.View(ctx, func(agg *store.Aggregate) error {
			stored, err := agg.User("USER0001")
			require.NoError(t, err)
			assert.NotContains(t, stored.PaymentMethods, "injected")
			return nil
		}))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetUser(ctx, "USER0404")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
