package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
)

const (
	BookingIDPrefix = "BOOK"
	ReviewIDPrefix  = "REV"
)

// Blob is the persistence collaborator: a file-backed dump of the whole
// aggregate, loaded once and overwritten after every mutation.
type Blob interface {
	Load(ctx context.Context) (*Aggregate, error)
	Save(ctx context.Context, agg *Aggregate) error
}

// Store owns the aggregate and is the single choke point all operations
// go through. A write lock is held for the full span of an update —
// availability check, calendar mutation, booking write and persistence —
// so overlapping reservations can never both succeed. Read-only queries
// share a read lock and always observe a consistent snapshot.
type Store struct {
	mu     sync.RWMutex
	blob   Blob
	logger *slog.Logger

	saveTimeout time.Duration

	loaded atomic.Bool
	agg    *Aggregate

	// Next numeric suffixes, computed once at load by scanning existing
	// ids; gap-tolerant and monotonic for the life of the process.
	nextBookingSeq int
	nextReviewSeq  int
}

func New(blob Blob, logger *slog.Logger, cfg config.StoreConfig) *Store {
	return &Store{
		blob:        blob,
		logger:      logger,
		saveTimeout: cfg.SaveTimeout,
	}
}

// Load forces the initial read of the blob. Callers may also rely on
// lazy loading through View/Within.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoadedLocked(ctx)
}

func (s *Store) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded.Load() {
		return nil
	}
	agg, err := s.blob.Load(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindCorrupt) {
			return errs.Mark(err, errs.ErrCorruptStore)
		}
		return err
	}
	s.agg = agg
	s.nextBookingSeq = maxSuffix(keys(agg.Bookings), BookingIDPrefix) + 1
	s.nextReviewSeq = maxSuffix(keys(agg.Reviews), ReviewIDPrefix) + 1
	s.loaded.Store(true)
	s.logger.Info("aggregate loaded",
		"properties", len(agg.Properties),
		"users", len(agg.Users),
		"bookings", len(agg.Bookings),
		"reviews", len(agg.Reviews),
	)
	return nil
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.loaded.Load() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoadedLocked(ctx)
}

// View runs fn against the aggregate under a shared read lock. fn must
// not retain or mutate anything it is handed.
func (s *Store) View(ctx context.Context, fn func(agg *Aggregate) error) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.agg)
}

// Tx is the handle a mutating operation works through; id allocation is
// only valid inside Within, where the write lock is held.
type Tx struct {
	store *Store
	agg   *Aggregate
}

func (t *Tx) Aggregate() *Aggregate { return t.agg }

func (t *Tx) NextBookingID() string {
	id := fmt.Sprintf("%s%04d", BookingIDPrefix, t.store.nextBookingSeq)
	t.store.nextBookingSeq++
	return id
}

func (t *Tx) NextReviewID() string {
	id := fmt.Sprintf("%s%04d", ReviewIDPrefix, t.store.nextReviewSeq)
	t.store.nextReviewSeq++
	return id
}

// Within runs a mutating operation and, when it succeeds, writes the
// whole aggregate back through the blob before releasing the write
// lock. A save failure is surfaced to the caller even though the
// in-memory mutation stands: the operation applied but its durability
// is unconfirmed, and re-saving the same aggregate is safe.
func (s *Store) Within(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	if err := fn(&Tx{store: s, agg: s.agg}); err != nil {
		return err
	}

	saveCtx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()
	if err := s.blob.Save(saveCtx, s.agg); err != nil {
		s.logger.Error("aggregate save failed after mutation", "error", err)
		return errs.Mark(err, errs.ErrStoreUnwritable)
	}
	return nil
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func maxSuffix(ids []string, prefix string) int {
	maxSeq := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > maxSeq {
			maxSeq = n
		}
	}
	return maxSeq
}
