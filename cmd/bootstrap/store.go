package bootstrap

import (
	"context"
	"log/slog"

	"staybook/internal/infra/blobstore"
	"staybook/internal/infra/store"
	"staybook/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore wires the file-backed blob into the in-memory store and
// loads the snapshot before the server starts accepting requests, so a
// corrupt file fails startup instead of the first request.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *store.Store {
	blob := blobstore.NewFileStore(cfg.Store, logger)
	st := store.New(blob, logger, cfg.Store)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return st.Load(ctx)
		},
	})

	return st
}
