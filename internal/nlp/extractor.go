package nlp

import (
	"regexp"
	"strings"

	"github.com/marimarques/cobrador/internal/model"
)

var (
	// 3-digit code immediately followed by one alphabetic word.
	gerenteRe = regexp.MustCompile(`\b(\d{3})\s+([a-z]+)\b`)
	// "ficha 0301" or a bare 4-digit number at a word boundary.
	fichaRe   = regexp.MustCompile(`ficha\s*(\d{4})`)
	numero4Re = regexp.MustCompile(`\b(\d{4})\b`)
	numeroRe  = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// acoes is first-match-wins: only one action is ever recorded per question.
var acoes = []struct {
	padrao string
	acao   model.Action
}{
	{"listar", model.ActionListar},
	{"lista", model.ActionListar},
	{"mostr", model.ActionListar},
	{"calcul", model.ActionCalcular},
	{"soma", model.ActionCalcular},
	{"compar", model.ActionComparar},
	{"maior", model.ActionMaior},
	{"menor", model.ActionMenor},
	{"filtr", model.ActionFiltrar},
	{"apenas", model.ActionFiltrar},
}

// topicos appends every match; a question may carry several topics.
var topicos = []struct {
	padrao string
	topico model.Topic
}{
	{"prestac", model.TopicPrestacoes},
	{"despesa", model.TopicDespesas},
	{"financeiro", model.TopicFinanceiro},
	{"caixa", model.TopicFinanceiro},
	{"saldo", model.TopicFinanceiro},
	{"resumo", model.TopicFinanceiro},
	{"status", model.TopicFinanceiro},
	{"venda", model.TopicVendas},
	{"ficha", model.TopicFichas},
	{"gerente", model.TopicGerentes},
	{"devedor", model.TopicDevedores},
	{"devendo", model.TopicDevedores},
	{"deve", model.TopicDevedores},
	{"aberto", model.TopicAbertos},
	{"pendente", model.TopicAbertos},
	{"apagar", model.TopicAPagar},
}

// Extract runs every extraction pass over normalized text and returns the
// structured entity set. A pass that finds nothing yields an empty field;
// extraction never fails.
func Extract(text string) model.EntitySet {
	var e model.EntitySet

	for _, m := range gerenteRe.FindAllStringSubmatch(text, -1) {
		e.Gerentes = append(e.Gerentes, m[1]+" "+strings.ToUpper(m[2]))
	}

	seen := make(map[string]bool)
	for _, m := range fichaRe.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			e.Fichas = append(e.Fichas, m[1])
		}
	}
	for _, m := range numero4Re.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			e.Fichas = append(e.Fichas, m[1])
		}
	}

	// Raw numeric tokens are collected independently and may repeat digits
	// already captured as manager codes or tickets.
	e.Numeros = numeroRe.FindAllString(text, -1)

	for _, p := range []struct{ padrao, rotulo string }{
		{"pix", model.PagamentoPix},
		{"dinheiro", model.PagamentoDinheiro},
		{"cartao", model.PagamentoCartao},
	} {
		if strings.Contains(text, p.padrao) {
			e.Pagamentos = append(e.Pagamentos, p.rotulo)
		}
	}

	for _, a := range acoes {
		if strings.Contains(text, a.padrao) {
			e.Acao = a.acao
			break
		}
	}

	vistos := make(map[model.Topic]bool)
	for _, t := range topicos {
		if strings.Contains(text, t.padrao) && !vistos[t.topico] {
			vistos[t.topico] = true
			e.Topicos = append(e.Topicos, t.topico)
		}
	}

	return e
}
