package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/marimarques/cobrador/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRunImportGerentes(t *testing.T) {
	store, err := storage.New(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	path := writeCSV(t, "gerentes.csv",
		"codigo,nome,telefone,regiao\n355,Carlos,11999990000,Zona Norte\n402,Maria,,Centro\n")

	require.NoError(t, runImport(context.Background(), store, "gerentes", path))

	got, err := store.ListGerentes(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Carlos", got[0].Nome)
}

func TestRunImportPrestacoesSkipsBadRows(t *testing.T) {
	store, err := storage.New(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	path := writeCSV(t, "prestacoes.csv",
		"id,gerente_codigo,gerente_nome,total,pago,restante,status,data\n"+
			"p1,355,Carlos,2000,800,1200,aberta,2026-08-01\n"+
			"p2,402,Maria,nao-e-numero,0,0,aberta,2026-08-02\n")

	require.NoError(t, runImport(context.Background(), store, "prestacoes", path))

	got, err := store.ListPrestacoes(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1, "invalid row must be skipped, not abort the import")
	assert.Equal(t, "p1", got[0].ID)
	assert.InDelta(t, 1200, got[0].Restante, 0.001)
}

func TestRunImportValorAcceptsComma(t *testing.T) {
	store, err := storage.New(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	path := writeCSV(t, "despesas.csv",
		"id,gerente_codigo,descricao,categoria,valor,data\nd1,355,combustível,transporte,\"150,50\",2026-08-10\n")

	require.NoError(t, runImport(context.Background(), store, "despesas", path))

	got, err := store.ListDespesas(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 150.50, got[0].Valor, 0.001)
}

func TestRunImportUnknownDataset(t *testing.T) {
	store, err := storage.New(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	path := writeCSV(t, "x.csv", "a,b\n1,2\n")
	assert.Error(t, runImport(context.Background(), store, "naoexiste", path))
}
