package storage

import (
	"context"
	"testing"
	"time"

	"github.com/marimarques/cobrador/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Migrate(context.Background()))
}

func TestSaveAndListGerentes(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveGerente(ctx, model.Gerente{Codigo: "355", Nome: "Carlos", Ativo: true}))
	require.NoError(t, s.SaveGerente(ctx, model.Gerente{Codigo: "402", Nome: "Maria", Ativo: true}))
	// Upsert by code.
	require.NoError(t, s.SaveGerente(ctx, model.Gerente{Codigo: "355", Nome: "Carlos Silva", Ativo: true}))

	got, err := s.ListGerentes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Carlos Silva", got[0].Nome)
	assert.Equal(t, "402", got[1].Codigo)
}

func TestListGerentesSkipsInactive(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveGerente(ctx, model.Gerente{Codigo: "355", Nome: "Carlos", Ativo: true}))
	require.NoError(t, s.SaveGerente(ctx, model.Gerente{Codigo: "999", Nome: "Antigo", Ativo: false}))

	got, err := s.ListGerentes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "355", got[0].Codigo)
}

func TestSaveAndListPrestacoes(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	agora := time.Now()

	require.NoError(t, s.SavePrestacao(ctx, model.Prestacao{
		ID: "p1", GerenteCodigo: "355", GerenteNome: "Carlos",
		Total: 1000, Pago: 400, Restante: 600, Status: model.PrestacaoAberta, Data: agora,
	}))
	require.NoError(t, s.SavePrestacao(ctx, model.Prestacao{
		ID: "p2", GerenteCodigo: "402", GerenteNome: "Maria",
		Total: 500, Pago: 500, Restante: 0, Status: model.PrestacaoQuitada, Data: agora,
	}))

	got, err := s.ListPrestacoes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Open settlements come first.
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, model.PrestacaoAberta, got[0].Status)
	assert.InDelta(t, 600, got[0].Restante, 0.001)
}

func TestSaveAndListVendas(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveVenda(ctx, model.Venda{
		ID: "v1", Ficha: "0301", GerenteCodigo: "355", Produto: "cesta",
		FormaPgto: model.PagamentoPix, Quantidade: 2, Valor: 150, Data: time.Now(),
	}))

	got, err := s.ListVendas(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0301", got[0].Ficha)
	assert.Equal(t, 2, got[0].Quantidade)
}

func TestResumoRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	got, err := s.GetResumo(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "no summary row yet")

	require.NoError(t, s.SaveResumo(ctx, model.Resumo{
		TotalGerentes: 3, PrestacoesAbertas: 2, TotalReceber: 1100, LimiteDespesa: 800,
	}))

	got, err = s.GetResumo(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.TotalGerentes)
	assert.InDelta(t, 800, got.LimiteDespesa, 0.001)
}

func TestTranscriptAppendOnly(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendTranscript(ctx, "usuario", "Quem deve mais?"))
	require.NoError(t, s.AppendTranscript(ctx, "bot", "355 Carlos"))

	got, err := s.ListTranscript(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bot", got[0].Quem, "newest first")
}

func TestSnapshotCollector(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveGerente(ctx, model.Gerente{Codigo: "355", Nome: "Carlos", Ativo: true}))
	require.NoError(t, s.SaveDespesa(ctx, model.Despesa{ID: "d1", GerenteCodigo: "355", Valor: 120, Data: time.Now()}))

	snap, err := NewSnapshotCollector(s).Collect(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Gerentes, 1)
	assert.Len(t, snap.Despesas, 1)
	assert.Empty(t, snap.Vendas)
	assert.Nil(t, snap.Resumo)
}

func TestSnapshotCollectorFailsSoft(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Close())

	// Every sub-fetch fails against the closed database, but Collect still
	// returns an empty snapshot with no error.
	snap, err := NewSnapshotCollector(s).Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Vazio())
	assert.Nil(t, snap.Resumo)
}
