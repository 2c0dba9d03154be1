package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/marimarques/cobrador/internal/common"
	"github.com/marimarques/cobrador/internal/model"
	"github.com/marimarques/cobrador/internal/storage"
)

func importCmd() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "import <arquivo.csv>",
		Short: "Import business data from a CSV file",
		Long: `Import one dataset from a CSV file with a header row.

Datasets and their columns:
  gerentes     codigo,nome,telefone,regiao
  prestacoes   id,gerente_codigo,gerente_nome,total,pago,restante,status,data
  despesas     id,gerente_codigo,descricao,categoria,valor,data
  vendas       id,ficha,gerente_codigo,produto,forma_pgto,quantidade,valor,data
  lancamentos  id,tipo,descricao,valor,data
  pendencias   id,gerente_codigo,descricao,valor,data

Dates use the 2006-01-02 format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return runImport(cmd.Context(), store, dataset, args[0])
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset to import (gerentes, prestacoes, despesas, vendas, lancamentos, pendencias)")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func runImport(ctx context.Context, store *storage.Store, dataset, path string) error {
	saver, err := rowSaver(store, dataset)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("%w: %s has no data rows", common.ErrInvalidRecord, path)
	}
	rows = rows[1:] // header

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("Importing %s...", dataset)),
	)

	imported, skipped := 0, 0
	for i, row := range rows {
		if err := saver(ctx, row); err != nil {
			skipped++
			slog.Warn("skipping row", "line", i+2, "error", err)
		} else {
			imported++
		}
		_ = bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	slog.Info("import finished", "dataset", dataset, "imported", imported, "skipped", skipped)
	return nil
}

type saveFunc func(ctx context.Context, row []string) error

func rowSaver(store *storage.Store, dataset string) (saveFunc, error) {
	switch dataset {
	case "gerentes":
		return func(ctx context.Context, row []string) error {
			if len(row) < 2 {
				return fmt.Errorf("%w: expected codigo,nome", common.ErrInvalidRecord)
			}
			g := model.Gerente{Codigo: row[0], Nome: row[1], Ativo: true}
			if len(row) > 2 {
				g.Telefone = row[2]
			}
			if len(row) > 3 {
				g.Regiao = row[3]
			}
			return store.SaveGerente(ctx, g)
		}, nil

	case "prestacoes":
		return func(ctx context.Context, row []string) error {
			if len(row) < 8 {
				return fmt.Errorf("%w: expected 8 columns", common.ErrInvalidRecord)
			}
			total, err := parseValor(row[3])
			if err != nil {
				return err
			}
			pago, err := parseValor(row[4])
			if err != nil {
				return err
			}
			restante, err := parseValor(row[5])
			if err != nil {
				return err
			}
			data, err := parseData(row[7])
			if err != nil {
				return err
			}
			return store.SavePrestacao(ctx, model.Prestacao{
				ID: row[0], GerenteCodigo: row[1], GerenteNome: row[2],
				Total: total, Pago: pago, Restante: restante,
				Status: model.PrestacaoStatus(strings.ToUpper(row[6])), Data: data,
			})
		}, nil

	case "despesas":
		return func(ctx context.Context, row []string) error {
			if len(row) < 6 {
				return fmt.Errorf("%w: expected 6 columns", common.ErrInvalidRecord)
			}
			valor, err := parseValor(row[4])
			if err != nil {
				return err
			}
			data, err := parseData(row[5])
			if err != nil {
				return err
			}
			return store.SaveDespesa(ctx, model.Despesa{
				ID: row[0], GerenteCodigo: row[1], Descricao: row[2],
				Categoria: row[3], Valor: valor, Data: data,
			})
		}, nil

	case "vendas":
		return func(ctx context.Context, row []string) error {
			if len(row) < 8 {
				return fmt.Errorf("%w: expected 8 columns", common.ErrInvalidRecord)
			}
			quantidade, err := strconv.Atoi(row[5])
			if err != nil {
				return fmt.Errorf("%w: bad quantidade %q", common.ErrInvalidRecord, row[5])
			}
			valor, err := parseValor(row[6])
			if err != nil {
				return err
			}
			data, err := parseData(row[7])
			if err != nil {
				return err
			}
			return store.SaveVenda(ctx, model.Venda{
				ID: row[0], Ficha: row[1], GerenteCodigo: row[2], Produto: row[3],
				FormaPgto: row[4], Quantidade: quantidade, Valor: valor, Data: data,
			})
		}, nil

	case "lancamentos":
		return func(ctx context.Context, row []string) error {
			if len(row) < 5 {
				return fmt.Errorf("%w: expected 5 columns", common.ErrInvalidRecord)
			}
			valor, err := parseValor(row[3])
			if err != nil {
				return err
			}
			data, err := parseData(row[4])
			if err != nil {
				return err
			}
			return store.SaveLancamento(ctx, model.Lancamento{
				ID: row[0], Tipo: row[1], Descricao: row[2], Valor: valor, Data: data,
			})
		}, nil

	case "pendencias":
		return func(ctx context.Context, row []string) error {
			if len(row) < 5 {
				return fmt.Errorf("%w: expected 5 columns", common.ErrInvalidRecord)
			}
			valor, err := parseValor(row[3])
			if err != nil {
				return err
			}
			data, err := parseData(row[4])
			if err != nil {
				return err
			}
			return store.SavePendencia(ctx, model.Pendencia{
				ID: row[0], GerenteCodigo: row[1], Descricao: row[2], Valor: valor, Data: data,
			})
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", common.ErrUnknownDataset, dataset)
}

// parseValor accepts both "1234.50" and "1234,50".
func parseValor(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad valor %q", common.ErrInvalidRecord, s)
	}
	return v, nil
}

func parseData(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad data %q", common.ErrInvalidRecord, s)
	}
	return t, nil
}
