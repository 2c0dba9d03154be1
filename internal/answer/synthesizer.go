// Package answer turns a classified query plus a data snapshot into a
// ready-to-display response string. Generators are pure given the snapshot
// and entities and always degrade to an explicit "no data" sentence instead
// of returning empty or malformed text.
package answer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marimarques/cobrador/internal/model"
)

// LimiteDespesaPadrao is the default expense alert threshold, used when
// neither configuration nor the snapshot summary overrides it.
const LimiteDespesaPadrao = 1000.0

// SemDados is the explicit sentence returned when the snapshot carries
// nothing to answer with.
const SemDados = "Não há dados disponíveis no momento."

type gerador func(q model.Query, snap model.Snapshot) string

// Synthesizer dispatches a classified query to its generator.
type Synthesizer struct {
	geradores     map[model.IntentType]gerador
	limiteDespesa float64
}

// New creates a synthesizer. A non-positive limit falls back to the default
// expense alert threshold.
func New(limiteDespesa float64) *Synthesizer {
	if limiteDespesa <= 0 {
		limiteDespesa = LimiteDespesaPadrao
	}
	s := &Synthesizer{limiteDespesa: limiteDespesa}
	s.geradores = map[model.IntentType]gerador{
		model.IntentMaiorDevedor:     s.maiorDevedor,
		model.IntentTotalPrestacoes:  s.totalPrestacoes,
		model.IntentTotalDespesas:    s.totalDespesas,
		model.IntentDespesasAcima:    s.despesasAcima,
		model.IntentListarGerentes:   s.listarGerentes,
		model.IntentPrestacaoGerente: s.prestacaoGerente,
		model.IntentDespesasGerente:  s.despesasGerente,
		model.IntentInfoGerente:      s.infoGerente,
		model.IntentInfoFicha:        s.infoFicha,
		model.IntentResumoGeral:      s.resumoGeral,
	}
	return s
}

// Synthesize produces the final answer. Below the confidence gate it always
// asks for clarification, regardless of the classified intent. An unknown
// intent re-checks the topics before giving up.
func (s *Synthesizer) Synthesize(q model.Query, snap model.Snapshot) string {
	if q.Confianca < 0.5 {
		return s.clarificacao(snap)
	}
	if g, ok := s.geradores[q.Intencao.Type]; ok {
		return g(q, snap)
	}
	for _, t := range q.Entidades.Topicos {
		switch t {
		case model.TopicPrestacoes:
			return s.totalPrestacoes(q, snap)
		case model.TopicDespesas:
			return s.totalDespesas(q, snap)
		}
	}
	return s.clarificacao(snap)
}

func (s *Synthesizer) maiorDevedor(_ model.Query, snap model.Snapshot) string {
	abertas := prestacoesAbertas(snap)
	if len(abertas) == 0 {
		return "Não há prestações em aberto no momento."
	}
	sort.SliceStable(abertas, func(i, j int) bool {
		return abertas[i].Restante > abertas[j].Restante
	})

	var b strings.Builder
	b.WriteString("*Maiores devedores:*\n")
	for i, p := range abertas {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, rotuloPrestacao(p), FormatBRL(p.Restante))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Synthesizer) totalPrestacoes(_ model.Query, snap model.Snapshot) string {
	abertas := prestacoesAbertas(snap)
	if len(abertas) == 0 {
		return "Não há prestações em aberto no momento."
	}
	var total, pago, restante float64
	for _, p := range abertas {
		total += p.Total
		pago += p.Pago
		restante += p.Restante
	}
	return fmt.Sprintf("*Prestações em aberto:* %d\nTotal: %s\nRecebido: %s\nA receber: %s",
		len(abertas), FormatBRL(total), FormatBRL(pago), FormatBRL(restante))
}

func (s *Synthesizer) totalDespesas(_ model.Query, snap model.Snapshot) string {
	if len(snap.Despesas) == 0 {
		return "Não há despesas registradas."
	}
	var total float64
	porGerente := make(map[string]float64)
	for _, d := range snap.Despesas {
		total += d.Valor
		chave := d.GerenteCodigo
		if chave == "" {
			chave = "geral"
		}
		porGerente[chave] += d.Valor
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Total de despesas:* %s (%d lançamentos)\n", FormatBRL(total), len(snap.Despesas))

	type grupo struct {
		chave string
		valor float64
	}
	grupos := make([]grupo, 0, len(porGerente))
	for k, v := range porGerente {
		grupos = append(grupos, grupo{k, v})
	}
	sort.SliceStable(grupos, func(i, j int) bool { return grupos[i].valor > grupos[j].valor })
	for i, g := range grupos {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "• %s: %s\n", g.chave, FormatBRL(g.valor))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Synthesizer) despesasAcima(_ model.Query, snap model.Snapshot) string {
	limite := s.limiteDespesa
	if snap.Resumo != nil && snap.Resumo.LimiteDespesa > 0 {
		limite = snap.Resumo.LimiteDespesa
	}

	var acima []model.Despesa
	for _, d := range snap.Despesas {
		if d.Valor > limite {
			acima = append(acima, d)
		}
	}
	if len(acima) == 0 {
		return fmt.Sprintf("Nenhuma despesa acima de %s.", FormatBRL(limite))
	}
	sort.SliceStable(acima, func(i, j int) bool { return acima[i].Valor > acima[j].Valor })

	var b strings.Builder
	fmt.Fprintf(&b, "*Despesas acima de %s:* %d\n", FormatBRL(limite), len(acima))
	for _, d := range acima {
		rotulo := d.Descricao
		if rotulo == "" {
			rotulo = "sem descrição"
		}
		if d.GerenteCodigo != "" {
			rotulo += " (" + d.GerenteCodigo + ")"
		}
		fmt.Fprintf(&b, "• %s: %s\n", rotulo, FormatBRL(d.Valor))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Synthesizer) listarGerentes(_ model.Query, snap model.Snapshot) string {
	if len(snap.Gerentes) == 0 {
		return "Não há gerentes cadastrados."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "*Gerentes cadastrados:* %d\n", len(snap.Gerentes))
	for i, g := range snap.Gerentes {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, g.Codigo, g.Nome)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Synthesizer) prestacaoGerente(q model.Query, snap model.Snapshot) string {
	codigo, rotulo := gerenteAlvo(q.Entidades)
	var linhas []string
	var total, pago, restante float64
	for _, p := range snap.Prestacoes {
		if p.GerenteCodigo != codigo {
			continue
		}
		total += p.Total
		pago += p.Pago
		restante += p.Restante
		linhas = append(linhas, fmt.Sprintf("• %s: total %s, pago %s, restante %s",
			p.Data.Format("02/01/2006"), FormatBRL(p.Total), FormatBRL(p.Pago), FormatBRL(p.Restante)))
	}
	if len(linhas) == 0 {
		return fmt.Sprintf("Não há prestações para o gerente %s.", rotulo)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Prestações de %s:* %d\n", rotulo, len(linhas))
	b.WriteString(strings.Join(linhas, "\n"))
	fmt.Fprintf(&b, "\nTotal: %s | Pago: %s | Restante: %s",
		FormatBRL(total), FormatBRL(pago), FormatBRL(restante))
	return b.String()
}

func (s *Synthesizer) despesasGerente(q model.Query, snap model.Snapshot) string {
	codigo, rotulo := gerenteAlvo(q.Entidades)
	var linhas []string
	var total float64
	for _, d := range snap.Despesas {
		if d.GerenteCodigo != codigo {
			continue
		}
		total += d.Valor
		linhas = append(linhas, fmt.Sprintf("• %s: %s", d.Descricao, FormatBRL(d.Valor)))
	}
	if len(linhas) == 0 {
		return fmt.Sprintf("Não há despesas para o gerente %s.", rotulo)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Despesas de %s:* %s (%d lançamentos)\n", rotulo, FormatBRL(total), len(linhas))
	b.WriteString(strings.Join(linhas, "\n"))
	return b.String()
}

func (s *Synthesizer) infoGerente(q model.Query, snap model.Snapshot) string {
	codigo, rotulo := gerenteAlvo(q.Entidades)

	var prestacoes int
	var aReceber float64
	for _, p := range snap.Prestacoes {
		if p.GerenteCodigo == codigo && p.Aberta() {
			prestacoes++
			aReceber += p.Restante
		}
	}
	var despesas int
	var gasto float64
	for _, d := range snap.Despesas {
		if d.GerenteCodigo == codigo {
			despesas++
			gasto += d.Valor
		}
	}
	var vendas int
	var vendido float64
	for _, v := range snap.Vendas {
		if v.GerenteCodigo == codigo {
			vendas++
			vendido += v.Valor
		}
	}

	if prestacoes == 0 && despesas == 0 && vendas == 0 {
		return fmt.Sprintf("Não encontrei dados para o gerente %s.", rotulo)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Gerente %s:*\n", rotulo)
	fmt.Fprintf(&b, "• Prestações em aberto: %d (%s a receber)\n", prestacoes, FormatBRL(aReceber))
	fmt.Fprintf(&b, "• Despesas: %d (%s)\n", despesas, FormatBRL(gasto))
	fmt.Fprintf(&b, "• Vendas: %d (%s)", vendas, FormatBRL(vendido))
	return b.String()
}

func (s *Synthesizer) infoFicha(q model.Query, snap model.Snapshot) string {
	if len(q.Entidades.Fichas) == 0 {
		return SemDados
	}
	ficha := q.Entidades.Fichas[0]

	var linhas []string
	var quantidade int
	var total float64
	for _, v := range snap.Vendas {
		if v.Ficha != ficha {
			continue
		}
		quantidade += v.Quantidade
		total += v.Valor
		rotulo := v.Produto
		if rotulo == "" {
			rotulo = "venda"
		}
		linhas = append(linhas, fmt.Sprintf("• %s x%d: %s", rotulo, v.Quantidade, FormatBRL(v.Valor)))
	}
	if len(linhas) == 0 {
		return fmt.Sprintf("Não encontrei vendas para a ficha %s.", ficha)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Ficha %s:* %d itens, total %s\n", ficha, quantidade, FormatBRL(total))
	b.WriteString(strings.Join(linhas, "\n"))
	return b.String()
}

func (s *Synthesizer) resumoGeral(_ model.Query, snap model.Snapshot) string {
	if snap.Vazio() {
		return SemDados
	}

	gerentes := len(snap.Gerentes)
	abertas := prestacoesAbertas(snap)
	nAbertas := len(abertas)
	var aReceber float64
	for _, p := range abertas {
		aReceber += p.Restante
	}
	var despesas, vendas float64
	for _, d := range snap.Despesas {
		despesas += d.Valor
	}
	for _, v := range snap.Vendas {
		vendas += v.Valor
	}

	// A precomputed dashboard row wins over per-row derivation when present.
	if r := snap.Resumo; r != nil {
		if r.TotalGerentes > 0 {
			gerentes = r.TotalGerentes
		}
		if r.PrestacoesAbertas > 0 {
			nAbertas = r.PrestacoesAbertas
		}
		if r.TotalReceber > 0 {
			aReceber = r.TotalReceber
		}
		if r.TotalDespesas > 0 {
			despesas = r.TotalDespesas
		}
		if r.TotalVendas > 0 {
			vendas = r.TotalVendas
		}
	}

	var b strings.Builder
	b.WriteString("*Resumo geral:*\n")
	fmt.Fprintf(&b, "• Gerentes: %d\n", gerentes)
	fmt.Fprintf(&b, "• Prestações em aberto: %d (%s a receber)\n", nAbertas, FormatBRL(aReceber))
	fmt.Fprintf(&b, "• Despesas: %d (%s)\n", len(snap.Despesas), FormatBRL(despesas))
	fmt.Fprintf(&b, "• Vendas: %d (%s)\n", len(snap.Vendas), FormatBRL(vendas))
	if len(snap.Pendencias) > 0 {
		fmt.Fprintf(&b, "• Pendências: %d\n", len(snap.Pendencias))
	}
	return strings.TrimRight(b.String(), "\n")
}

// clarificacao lists which data categories exist (counts only) and a few
// example questions the operator could ask, then prompts for a rephrase.
func (s *Synthesizer) clarificacao(snap model.Snapshot) string {
	var b strings.Builder
	b.WriteString("Não entendi bem sua pergunta.\n")

	categorias := []struct {
		rotulo string
		n      int
	}{
		{"gerentes", len(snap.Gerentes)},
		{"prestações", len(snap.Prestacoes)},
		{"despesas", len(snap.Despesas)},
		{"vendas", len(snap.Vendas)},
		{"lançamentos", len(snap.Lancamentos)},
		{"pendências", len(snap.Pendencias)},
	}
	var presentes []string
	for _, c := range categorias {
		if c.n > 0 {
			presentes = append(presentes, fmt.Sprintf("%d %s", c.n, c.rotulo))
		}
	}
	if len(presentes) > 0 {
		b.WriteString("*Dados disponíveis:* " + strings.Join(presentes, ", ") + "\n")
	}

	var exemplos []string
	if len(snap.Prestacoes) > 0 {
		exemplos = append(exemplos, "Quem está devendo mais?")
	}
	if len(snap.Despesas) > 0 {
		exemplos = append(exemplos, "Total de despesas")
	}
	if len(snap.Vendas) > 0 {
		exemplos = append(exemplos, "Ficha "+snap.Vendas[0].Ficha)
	}
	if len(snap.Gerentes) > 0 {
		exemplos = append(exemplos, "Quais são os gerentes?")
	}
	if len(exemplos) > 4 {
		exemplos = exemplos[:4]
	}
	if len(exemplos) > 0 {
		b.WriteString("Você pode perguntar, por exemplo:\n")
		for _, ex := range exemplos {
			b.WriteString("• " + ex + "\n")
		}
	}

	b.WriteString("Tente reformular a pergunta.")
	return b.String()
}

func prestacoesAbertas(snap model.Snapshot) []model.Prestacao {
	var abertas []model.Prestacao
	for _, p := range snap.Prestacoes {
		if p.Aberta() {
			abertas = append(abertas, p)
		}
	}
	return abertas
}

// gerenteAlvo resolves the first manager mention into a code and a display
// label. Mentions have the form "<code> <NAME>".
func gerenteAlvo(e model.EntitySet) (codigo, rotulo string) {
	if len(e.Gerentes) == 0 {
		return "", "desconhecido"
	}
	rotulo = e.Gerentes[0]
	codigo, _, _ = strings.Cut(rotulo, " ")
	return codigo, rotulo
}

// rotuloPrestacao names a settlement row by manager, preferring the name
// and falling back to the code.
func rotuloPrestacao(p model.Prestacao) string {
	switch {
	case p.GerenteNome != "" && p.GerenteCodigo != "":
		return p.GerenteCodigo + " " + p.GerenteNome
	case p.GerenteNome != "":
		return p.GerenteNome
	case p.GerenteCodigo != "":
		return p.GerenteCodigo
	}
	return "sem gerente"
}
