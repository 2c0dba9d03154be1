package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGerenteReferencia(t *testing.T) {
	g := Gerente{Codigo: "355", Nome: "Carlos"}
	assert.Equal(t, "355 CARLOS", g.Referencia())
}

func TestPrestacaoAberta(t *testing.T) {
	tests := []struct {
		name string
		p    Prestacao
		want bool
	}{
		{"open with balance", Prestacao{Status: PrestacaoAberta, Restante: 100}, true},
		{"partial with balance", Prestacao{Status: PrestacaoParcial, Restante: 50}, true},
		{"settled", Prestacao{Status: PrestacaoQuitada, Restante: 0}, false},
		{"settled with stale balance", Prestacao{Status: PrestacaoQuitada, Restante: 10}, false},
		{"open but zeroed", Prestacao{Status: PrestacaoAberta, Restante: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Aberta())
		})
	}
}

func TestSnapshotVazio(t *testing.T) {
	assert.True(t, (&Snapshot{}).Vazio())
	assert.True(t, (&Snapshot{Resumo: &Resumo{TotalGerentes: 3}}).Vazio(),
		"a summary alone is not business data")
	assert.False(t, (&Snapshot{Gerentes: []Gerente{{Codigo: "355"}}}).Vazio())
}

func TestEntitySetTemSujeito(t *testing.T) {
	assert.False(t, (&EntitySet{}).TemSujeito())
	assert.False(t, (&EntitySet{Topicos: []Topic{TopicDespesas}}).TemSujeito())
	assert.True(t, (&EntitySet{Gerentes: []string{"355 CARLOS"}}).TemSujeito())
	assert.True(t, (&EntitySet{Fichas: []string{"0301"}}).TemSujeito())
}
