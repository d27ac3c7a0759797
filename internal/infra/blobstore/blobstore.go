package blobstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"staybook/internal/infra"
	"staybook/internal/infra/store"
	"staybook/internal/pkg/config"
)

// FileStore persists the whole aggregate as one JSON blob. Load returns
// an empty aggregate when no store exists yet; Save overwrites the file
// atomically via a temp file and rename.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(cfg config.StoreConfig, logger *slog.Logger) *FileStore {
	return &FileStore{path: cfg.Path, logger: logger}
}

func (f *FileStore) Load(_ context.Context) (*store.Aggregate, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Info("no store found, starting with empty aggregate", "path", f.path)
			return store.NewAggregate(), nil
		}
		return nil, infra.WrapRepoErr(f.logger, infra.KindCorrupt, "read store file", err)
	}

	agg := store.NewAggregate()
	if err := json.Unmarshal(data, agg); err != nil {
		return nil, infra.WrapRepoErr(f.logger, infra.KindCorrupt, "decode store file", err)
	}
	if err := agg.Validate(); err != nil {
		return nil, infra.WrapRepoErr(f.logger, infra.KindCorrupt, "validate store file", err)
	}
	return agg, nil
}

func (f *FileStore) Save(_ context.Context, agg *store.Aggregate) error {
	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return infra.WrapRepoErr(f.logger, infra.KindUnwritable, "encode aggregate", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return infra.WrapRepoErr(f.logger, infra.KindUnwritable, "create store directory", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return infra.WrapRepoErr(f.logger, infra.KindUnwritable, "write store file", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return infra.WrapRepoErr(f.logger, infra.KindUnwritable, "replace store file", err)
	}
	return nil
}
