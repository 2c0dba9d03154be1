package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/marimarques/cobrador/internal/conversation"
	"github.com/marimarques/cobrador/internal/model"
	"github.com/stretchr/testify/assert"
)

type stubCollector struct {
	snap model.Snapshot
	err  error
}

func (s *stubCollector) Collect(_ context.Context) (model.Snapshot, error) {
	return s.snap, s.err
}

type panicCollector struct{}

func (panicCollector) Collect(_ context.Context) (model.Snapshot, error) {
	panic("boom")
}

func TestAnswerMaiorDevedor(t *testing.T) {
	// Scenario: "who owes the most" over two open settlements.
	eng := New(&stubCollector{snap: model.Snapshot{
		Prestacoes: []model.Prestacao{
			{GerenteNome: "Ana", Restante: 500, Status: model.PrestacaoAberta},
			{GerenteNome: "Bia", Restante: 1200, Status: model.PrestacaoAberta},
		},
	}}, Config{})

	got := eng.Answer(context.Background(), "Quem tem maior valor em aberto?", conversation.New())

	assert.Contains(t, got, "R$ 1.200,00")
	assert.Less(t, strings.Index(got, "Bia"), strings.Index(got, "Ana"))
}

func TestAnswerFollowUpResolvesTicket(t *testing.T) {
	snap := model.Snapshot{
		Vendas: []model.Venda{{Ficha: "0301", Produto: "cesta", Quantidade: 2, Valor: 150}},
	}
	eng := New(&stubCollector{snap: snap}, Config{})
	sessao := conversation.New()

	primeira := eng.Answer(context.Background(), "Ficha 0301", sessao)
	assert.Contains(t, primeira, "Ficha 0301")

	segunda := eng.Answer(context.Background(), "E esse?", sessao)
	assert.Contains(t, segunda, "Ficha 0301", "follow-up must resolve the remembered ticket")
	assert.Contains(t, segunda, "R$ 150,00")
}

func TestAnswerDespesasGerente(t *testing.T) {
	snap := model.Snapshot{
		Despesas: []model.Despesa{
			{GerenteCodigo: "355", Descricao: "combustível", Valor: 120},
			{GerenteCodigo: "402", Descricao: "papelaria", Valor: 40},
		},
	}
	eng := New(&stubCollector{snap: snap}, Config{})

	got := eng.Answer(context.Background(), "355 Carlos despesas", conversation.New())

	assert.Contains(t, got, "355 CARLOS")
	assert.Contains(t, got, "combustível")
	assert.NotContains(t, got, "papelaria")
}

func TestAnswerResumoGeralSemDados(t *testing.T) {
	eng := New(&stubCollector{}, Config{})

	got := eng.Answer(context.Background(), "Resumo geral", conversation.New())
	assert.Equal(t, "Não há dados disponíveis no momento.", got)
}

func TestAnswerVagueWithoutContextClarifies(t *testing.T) {
	eng := New(&stubCollector{snap: model.Snapshot{
		Gerentes: []model.Gerente{{Codigo: "355", Nome: "Carlos"}},
	}}, Config{})

	got := eng.Answer(context.Background(), "isso", conversation.New())
	assert.Contains(t, got, "Não entendi bem sua pergunta.")
}

func TestAnswerCollectorErrorDegradesToEmptySnapshot(t *testing.T) {
	eng := New(&stubCollector{err: errors.New("db unavailable")}, Config{})

	got := eng.Answer(context.Background(), "Resumo geral", conversation.New())
	assert.Equal(t, "Não há dados disponíveis no momento.", got)
}

func TestAnswerRecoversFromPanic(t *testing.T) {
	eng := New(panicCollector{}, Config{})

	got := eng.Answer(context.Background(), "Resumo geral", conversation.New())
	assert.Equal(t, Desculpa, got)
}

func TestAnswerDeterministic(t *testing.T) {
	snap := model.Snapshot{
		Despesas: []model.Despesa{{GerenteCodigo: "355", Valor: 120}},
	}
	eng := New(&stubCollector{snap: snap}, Config{})

	var first string
	for i := 0; i < 10; i++ {
		sessao := conversation.New()
		got := eng.Answer(context.Background(), "Total de despesas", sessao)
		if i == 0 {
			first = got
			continue
		}
		assert.Equal(t, first, got)
	}
}
