package model

// Snapshot is a read-only, per-question materialization of current business
// data. It is fetched fresh for every question and never mutated by the
// query engine; a missing category is an empty slice, never an error.
type Snapshot struct {
	Resumo      *Resumo
	Gerentes    []Gerente
	Prestacoes  []Prestacao
	Despesas    []Despesa
	Vendas      []Venda
	Lancamentos []Lancamento
	Pendencias  []Pendencia
}

// Vazio reports whether the snapshot carries no business data at all.
func (s *Snapshot) Vazio() bool {
	return len(s.Gerentes) == 0 &&
		len(s.Prestacoes) == 0 &&
		len(s.Despesas) == 0 &&
		len(s.Vendas) == 0 &&
		len(s.Lancamentos) == 0 &&
		len(s.Pendencias) == 0
}
