//go:build unit

package storetest

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"staybook/internal/infra/store"
	"staybook/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

// MemoryBlob keeps the aggregate in memory and counts saves. SaveErr,
// when set, makes every subsequent Save fail, which is how tests force
// the durability-unconfirmed path.
type MemoryBlob struct {
	mu      sync.Mutex
	agg     *store.Aggregate
	saves   int
	SaveErr error
}

func NewMemoryBlob(agg *store.Aggregate) *MemoryBlob {
	if agg == nil {
		agg = store.NewAggregate()
	}
	return &MemoryBlob{agg: agg}
}

func (m *MemoryBlob) Load(_ context.Context) (*store.Aggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.agg, nil
}

func (m *MemoryBlob) Save(_ context.Context, agg *store.Aggregate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.agg = agg
	m.saves++
	return nil
}

func (m *MemoryBlob) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *MemoryBlob) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveErr = err
}

// NewLoadedStore returns a store preloaded with the given aggregate.
func NewLoadedStore(t *testing.T, agg *store.Aggregate) (*store.Store, *MemoryBlob) {
	t.Helper()

	blob := NewMemoryBlob(agg)
	st := store.New(blob, DiscardLogger(), config.StoreConfig{SaveTimeout: time.Second})
	require.NoError(t, st.Load(context.Background()))
	return st, blob
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
