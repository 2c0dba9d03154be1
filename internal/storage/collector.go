package storage

import (
	"context"

	"github.com/marimarques/cobrador/internal/common"
	"github.com/marimarques/cobrador/internal/model"
)

// SnapshotCollector materializes a fresh business-data snapshot per
// question. Each sub-source fails soft: a query error is logged and the
// category degrades to an empty collection, so Collect never aborts the
// snapshot as a whole.
type SnapshotCollector struct {
	store *Store
}

// NewSnapshotCollector creates a collector over the given store.
func NewSnapshotCollector(store *Store) *SnapshotCollector {
	return &SnapshotCollector{store: store}
}

// Collect fetches every business-data category. The returned error is
// always nil; it exists only to satisfy the engine's collector contract.
func (c *SnapshotCollector) Collect(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot
	var err error

	if snap.Gerentes, err = c.store.ListGerentes(ctx); err != nil {
		common.LogError(err, "snapshot sub-fetch failed", common.Fields{"categoria": "gerentes"})
		snap.Gerentes = nil
	}
	if snap.Prestacoes, err = c.store.ListPrestacoes(ctx); err != nil {
		common.LogError(err, "snapshot sub-fetch failed", common.Fields{"categoria": "prestacoes"})
		snap.Prestacoes = nil
	}
	if snap.Despesas, err = c.store.ListDespesas(ctx); err != nil {
		common.LogError(err, "snapshot sub-fetch failed", common.Fields{"categoria": "despesas"})
		snap.Despesas = nil
	}
	if snap.Vendas, err = c.store.ListVendas(ctx); err != nil {
		common.LogError(err, "snapshot sub-fetch failed", common.Fields{"categoria": "vendas"})
		snap.Vendas = nil
	}
	if snap.Lancamentos, err = c.store.ListLancamentos(ctx); err != nil {
		common.LogError(err, "snapshot sub-fetch failed", common.Fields{"categoria": "lancamentos"})
		snap.Lancamentos = nil
	}
	if snap.Pendencias, err = c.store.ListPendencias(ctx); err != nil {
		common.LogError(err, "snapshot sub-fetch failed", common.Fields{"categoria": "pendencias"})
		snap.Pendencias = nil
	}
	if snap.Resumo, err = c.store.GetResumo(ctx); err != nil {
		common.LogError(err, "snapshot sub-fetch failed", common.Fields{"categoria": "resumo"})
		snap.Resumo = nil
	}

	return snap, nil
}
