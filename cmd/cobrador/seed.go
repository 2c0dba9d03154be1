package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/marimarques/cobrador/internal/model"
	"github.com/marimarques/cobrador/internal/storage"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a small demo dataset so chat works out of the box",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := seed(cmd.Context(), store); err != nil {
				return err
			}
			cmd.Println("Demo data loaded. Try: cobrador ask \"Quem está devendo mais?\"")
			return nil
		},
	}
}

func seed(ctx context.Context, store *storage.Store) error {
	hoje := time.Now()

	gerentes := []model.Gerente{
		{Codigo: "355", Nome: "Carlos", Regiao: "Zona Norte", Ativo: true},
		{Codigo: "402", Nome: "Maria", Regiao: "Centro", Ativo: true},
		{Codigo: "417", Nome: "Ana", Regiao: "Zona Sul", Ativo: true},
	}
	for _, g := range gerentes {
		if err := store.SaveGerente(ctx, g); err != nil {
			return err
		}
	}

	prestacoes := []model.Prestacao{
		{ID: "p-355-01", GerenteCodigo: "355", GerenteNome: "Carlos", Total: 2000, Pago: 800, Restante: 1200, Status: model.PrestacaoAberta, Data: hoje.AddDate(0, 0, -7)},
		{ID: "p-402-01", GerenteCodigo: "402", GerenteNome: "Maria", Total: 1500, Pago: 1000, Restante: 500, Status: model.PrestacaoParcial, Data: hoje.AddDate(0, 0, -5)},
		{ID: "p-417-01", GerenteCodigo: "417", GerenteNome: "Ana", Total: 900, Pago: 900, Restante: 0, Status: model.PrestacaoQuitada, Data: hoje.AddDate(0, 0, -3)},
	}
	for _, p := range prestacoes {
		if err := store.SavePrestacao(ctx, p); err != nil {
			return err
		}
	}

	despesas := []model.Despesa{
		{ID: "d-01", GerenteCodigo: "355", Descricao: "combustível", Categoria: "transporte", Valor: 1500, Data: hoje.AddDate(0, 0, -6)},
		{ID: "d-02", GerenteCodigo: "402", Descricao: "papelaria", Categoria: "escritório", Valor: 80, Data: hoje.AddDate(0, 0, -4)},
		{ID: "d-03", GerenteCodigo: "", Descricao: "aluguel do depósito", Categoria: "fixo", Valor: 950, Data: hoje.AddDate(0, 0, -1)},
	}
	for _, d := range despesas {
		if err := store.SaveDespesa(ctx, d); err != nil {
			return err
		}
	}

	vendas := []model.Venda{
		{ID: "v-01", Ficha: "0301", GerenteCodigo: "355", Produto: "cesta básica", FormaPgto: model.PagamentoPix, Quantidade: 2, Valor: 150, Data: hoje.AddDate(0, 0, -2)},
		{ID: "v-02", Ficha: "0301", GerenteCodigo: "355", Produto: "kit limpeza", FormaPgto: model.PagamentoDinheiro, Quantidade: 1, Valor: 80, Data: hoje.AddDate(0, 0, -2)},
		{ID: "v-03", Ficha: "0412", GerenteCodigo: "402", Produto: "cesta básica", FormaPgto: model.PagamentoCartao, Quantidade: 3, Valor: 225, Data: hoje.AddDate(0, 0, -1)},
	}
	for _, v := range vendas {
		if err := store.SaveVenda(ctx, v); err != nil {
			return err
		}
	}

	lancamentos := []model.Lancamento{
		{ID: "l-01", Tipo: "entrada", Descricao: "recebimento prestações", Valor: 2700, Data: hoje.AddDate(0, 0, -3)},
		{ID: "l-02", Tipo: "saida", Descricao: "despesas operacionais", Valor: 2530, Data: hoje.AddDate(0, 0, -1)},
	}
	for _, l := range lancamentos {
		if err := store.SaveLancamento(ctx, l); err != nil {
			return err
		}
	}

	if err := store.SavePendencia(ctx, model.Pendencia{
		ID: "pd-01", GerenteCodigo: "355", Descricao: "prestação da semana passada sem recibo", Valor: 200, Data: hoje,
	}); err != nil {
		return err
	}

	return store.SaveResumo(ctx, model.Resumo{
		TotalGerentes:     len(gerentes),
		PrestacoesAbertas: 2,
		TotalReceber:      1700,
		TotalDespesas:     2530,
		TotalVendas:       455,
	})
}
