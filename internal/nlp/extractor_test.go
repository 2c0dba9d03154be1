package nlp

import (
	"testing"

	"github.com/marimarques/cobrador/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExtractGerentes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "code followed by name",
			text: "355 carlos despesas",
			want: []string{"355 CARLOS"},
		},
		{
			name: "multiple managers kept in order",
			text: "comparar 355 carlos com 402 maria",
			want: []string{"355 CARLOS", "402 MARIA"},
		},
		{
			name: "bare 3-digit number is not a manager",
			text: "total de 355",
			want: nil,
		},
		{
			name: "4-digit number is not a manager",
			text: "1234 carlos",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.Equal(t, tt.want, got.Gerentes)
		})
	}
}

func TestExtractFichas(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "ficha keyword form",
			text: "ficha 0301",
			want: []string{"0301"},
		},
		{
			name: "bare 4-digit form",
			text: "como esta a 0301",
			want: []string{"0301"},
		},
		{
			name: "both forms deduplicated",
			text: "ficha 0301 e 0302",
			want: []string{"0301", "0302"},
		},
		{
			name: "no ticket",
			text: "total de despesas",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.Equal(t, tt.want, got.Fichas)
		})
	}
}

func TestExtractNumerosOverlapKept(t *testing.T) {
	// Digits captured as manager codes or tickets still appear in the raw
	// number list; the sets are intentionally not disjoint.
	got := Extract("355 carlos ficha 0301 acima de 150,50")
	assert.Equal(t, []string{"355", "0301", "150,50"}, got.Numeros)
	assert.Equal(t, []string{"355 CARLOS"}, got.Gerentes)
	assert.Equal(t, []string{"0301"}, got.Fichas)
}

func TestExtractPagamentos(t *testing.T) {
	got := Extract("vendas no pix e no cartao")
	assert.Equal(t, []string{model.PagamentoPix, model.PagamentoCartao}, got.Pagamentos)

	got = Extract("recebido em dinheiro")
	assert.Equal(t, []string{model.PagamentoDinheiro}, got.Pagamentos)

	got = Extract("total de despesas")
	assert.Empty(t, got.Pagamentos)
}

func TestExtractAcaoFirstMatchWins(t *testing.T) {
	// "listar" precedes "maior" in the table, so only one action is
	// recorded even when the text matches both.
	got := Extract("listar o maior devedor")
	assert.Equal(t, model.ActionListar, got.Acao)

	got = Extract("qual o maior valor")
	assert.Equal(t, model.ActionMaior, got.Acao)

	got = Extract("bom dia")
	assert.Empty(t, got.Acao)
}

func TestExtractTopicosAllMatchesKept(t *testing.T) {
	got := Extract("prestacoes e despesas do gerente")
	assert.Equal(t, []model.Topic{model.TopicPrestacoes, model.TopicDespesas, model.TopicGerentes}, got.Topicos)
}

func TestExtractTopicosDeduplicated(t *testing.T) {
	got := Extract("devedor devendo deve")
	assert.Equal(t, []model.Topic{model.TopicDevedores}, got.Topicos)
}

func TestExtractEmptyTextNeverFails(t *testing.T) {
	got := Extract("")
	assert.Empty(t, got.Gerentes)
	assert.Empty(t, got.Fichas)
	assert.Empty(t, got.Numeros)
	assert.Empty(t, got.Pagamentos)
	assert.Empty(t, got.Topicos)
	assert.Empty(t, got.Acao)
}
