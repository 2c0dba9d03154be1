// Package model defines the core domain models used throughout the application.
package model

import "time"

// PrestacaoStatus indicates where a settlement report is in its lifecycle.
type PrestacaoStatus string

// Settlement status constants.
const (
	PrestacaoAberta   PrestacaoStatus = "ABERTA"
	PrestacaoParcial  PrestacaoStatus = "PARCIAL"
	PrestacaoQuitada  PrestacaoStatus = "QUITADA"
	PrestacaoAtrasada PrestacaoStatus = "ATRASADA"
)

// Prestacao is a periodic settlement report for one manager, tracking the
// amounts owed, paid, and remaining.
type Prestacao struct {
	Data          time.Time
	ID            string
	GerenteCodigo string
	GerenteNome   string
	Status        PrestacaoStatus
	Total         float64
	Pago          float64
	Restante      float64
}

// Aberta reports whether the settlement still has an outstanding balance.
func (p *Prestacao) Aberta() bool {
	return p.Status != PrestacaoQuitada && p.Restante > 0
}

// Despesa is a single operational expense, optionally tied to a manager.
type Despesa struct {
	Data          time.Time
	ID            string
	GerenteCodigo string
	Descricao     string
	Categoria     string
	Valor         float64
}

// Venda is one sales record inside a ticket batch.
type Venda struct {
	Data          time.Time
	ID            string
	Ficha         string // 4-digit ticket identifier, e.g. "0301"
	GerenteCodigo string
	Produto       string
	FormaPgto     string // PIX, DINHEIRO, CARTÃO
	Quantidade    int
	Valor         float64
}

// Lancamento is a financial ledger entry (credit or debit).
type Lancamento struct {
	Data      time.Time
	ID        string
	Tipo      string // "entrada" or "saida"
	Descricao string
	Valor     float64
}

// Pendencia is an open follow-up item (unpaid charge, missing report).
type Pendencia struct {
	Data          time.Time
	ID            string
	GerenteCodigo string
	Descricao     string
	Valor         float64
}

// Resumo is the optional precomputed dashboard summary.
type Resumo struct {
	AtualizadoEm      time.Time
	TotalGerentes     int
	PrestacoesAbertas int
	TotalReceber      float64
	TotalDespesas     float64
	TotalVendas       float64
	LimiteDespesa     float64 // expense alert threshold; 0 means default
}
