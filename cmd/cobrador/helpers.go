package main

import (
	"github.com/marimarques/cobrador/internal/config"
	"github.com/marimarques/cobrador/internal/engine"
	"github.com/marimarques/cobrador/internal/storage"
)

// openStore opens the configured database, running migrations as needed.
func openStore() (*storage.Store, config.Config, error) {
	cfg := config.Load()
	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}

// buildEngine wires a query engine over the given store.
func buildEngine(store *storage.Store, cfg config.Config) *engine.Engine {
	return engine.New(storage.NewSnapshotCollector(store), engine.Config{
		LimiteDespesa: cfg.LimiteDespesa,
	})
}
