package model

// Action is the single verb detected in a question. Detection is
// first-match-wins: at most one action is ever recorded per question.
type Action string

// Action constants.
const (
	ActionListar   Action = "listar"
	ActionCalcular Action = "calcular"
	ActionComparar Action = "comparar"
	ActionMaior    Action = "maior"
	ActionMenor    Action = "menor"
	ActionFiltrar  Action = "filtrar"
)

// Topic is a subject area detected in a question. Unlike actions, every
// matching topic is recorded.
type Topic string

// Topic constants.
const (
	TopicPrestacoes Topic = "prestacoes"
	TopicDespesas   Topic = "despesas"
	TopicFinanceiro Topic = "financeiro"
	TopicVendas     Topic = "vendas"
	TopicFichas     Topic = "fichas"
	TopicGerentes   Topic = "gerentes"
	TopicDevedores  Topic = "devedores"
	TopicAbertos    Topic = "abertos"
	TopicAPagar     Topic = "apagar"
)

// PaymentMethod labels recognized in question text.
const (
	PagamentoPix      = "PIX"
	PagamentoDinheiro = "DINHEIRO"
	PagamentoCartao   = "CARTÃO"
)

// EntitySet holds everything extracted from one normalized question.
// Every field tolerates absence: a pass that finds nothing leaves an empty
// slice (or empty string for the action), never an error.
type EntitySet struct {
	Gerentes   []string // "<3 digits> <NAME>", in order of appearance
	Fichas     []string // 4-digit ticket numbers
	Numeros    []string // raw numeric tokens; may overlap with the above
	Pagamentos []string // PIX / DINHEIRO / CARTÃO
	Topicos    []Topic  // all matches, deduplicated
	Acao       Action   // first match only; empty when none
}

// TemSujeito reports whether the set names an explicit subject (a manager
// or a ticket). Sets without a subject never overwrite conversational memory.
func (e *EntitySet) TemSujeito() bool {
	return len(e.Gerentes) > 0 || len(e.Fichas) > 0
}

// IntentType is one of the closed set of intent labels.
type IntentType string

// Intent labels. Desconhecido is the default fallback.
const (
	IntentMaiorDevedor     IntentType = "maior_devedor"
	IntentTotalPrestacoes  IntentType = "total_prestacoes"
	IntentTotalDespesas    IntentType = "total_despesas"
	IntentDespesasAcima    IntentType = "despesas_acima"
	IntentListarGerentes   IntentType = "listar_gerentes"
	IntentPrestacaoGerente IntentType = "prestacao_gerente"
	IntentDespesasGerente  IntentType = "despesas_gerente"
	IntentInfoGerente      IntentType = "info_gerente"
	IntentInfoFicha        IntentType = "info_ficha"
	IntentResumoGeral      IntentType = "resumo_geral"
	IntentDesconhecido     IntentType = "desconhecido"
)

// Intent is a classified intent with its rule confidence.
type Intent struct {
	Type       IntentType
	Confidence float64
}

// Query is the immutable result of processing one question.
type Query struct {
	Original    string
	Normalizado string
	Entidades   EntitySet
	Intencao    Intent
	Confianca   float64 // overall score in [0,1]; gates synthesis
}
