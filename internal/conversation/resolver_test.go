package conversation

import (
	"fmt"
	"testing"

	"github.com/marimarques/cobrador/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaga(t *testing.T) {
	tests := []struct {
		texto string
		want  bool
	}{
		{"isso", true},
		{"Isso?", true},
		{"  ele ", true},
		{"E esse?", true},
		{"e agora?", true},
		{"Quanto?", true},
		{"quantos", true},
		{"depois?", true},
		{"continua a lista", true},
		{"total de despesas", false},
		{"355 Carlos", false},
		{"qual gerente deve mais", false},
	}

	for _, tt := range tests {
		t.Run(tt.texto, func(t *testing.T) {
			assert.Equal(t, tt.want, Vaga(tt.texto))
		})
	}
}

func TestResolveMergesRememberedSubject(t *testing.T) {
	c := New()
	c.UltimaEntidade = &Sujeito{Fichas: []string{"0301"}}
	c.UltimoTopico = model.TopicFichas

	resolved := Resolve("E esse?", model.EntitySet{}, c)

	assert.Equal(t, []string{"0301"}, resolved.Fichas)
	assert.Equal(t, []model.Topic{model.TopicFichas}, resolved.Topicos)
}

func TestResolveConcatenatesNotReplaces(t *testing.T) {
	c := New()
	c.UltimaEntidade = &Sujeito{Gerentes: []string{"355 CARLOS"}}

	ents := model.EntitySet{Gerentes: []string{"402 MARIA"}}
	resolved := Resolve("e ele?", ents, c)

	// The vague shape forces a merge even though a manager was extracted.
	assert.Equal(t, []string{"402 MARIA", "355 CARLOS"}, resolved.Gerentes)
}

func TestResolveExplicitSubjectSkipsMerge(t *testing.T) {
	c := New()
	c.UltimaEntidade = &Sujeito{Gerentes: []string{"355 CARLOS"}}

	ents := model.EntitySet{Gerentes: []string{"402 MARIA"}, Topicos: []model.Topic{model.TopicDespesas}}
	resolved := Resolve("despesas de 402 Maria", ents, c)

	assert.Equal(t, []string{"402 MARIA"}, resolved.Gerentes)
	require.NotNil(t, c.UltimaEntidade)
	assert.Equal(t, []string{"402 MARIA"}, c.UltimaEntidade.Gerentes)
	assert.Equal(t, model.TopicDespesas, c.UltimoTopico)
}

func TestResolveEmptyExtractionKeepsMemory(t *testing.T) {
	c := New()
	c.UltimaEntidade = &Sujeito{Fichas: []string{"0301"}}

	Resolve("bom dia", model.EntitySet{}, c)

	require.NotNil(t, c.UltimaEntidade)
	assert.Equal(t, []string{"0301"}, c.UltimaEntidade.Fichas)
}

func TestResolveVagueChainReinforcesSubject(t *testing.T) {
	// Write-back of the merged set is intentional: vague follow-ups keep
	// the subject alive indefinitely instead of decaying it.
	c := New()
	Resolve("Ficha 0301", model.EntitySet{Fichas: []string{"0301"}, Topicos: []model.Topic{model.TopicFichas}}, c)

	for i := 0; i < 4; i++ {
		resolved := Resolve("E esse?", model.EntitySet{}, c)
		assert.Equal(t, []string{"0301"}, resolved.Fichas)
	}
	require.NotNil(t, c.UltimaEntidade)
	assert.Equal(t, []string{"0301"}, c.UltimaEntidade.Fichas)
}

func TestResolveVagueSupersetProperty(t *testing.T) {
	c := New()
	c.UltimaEntidade = &Sujeito{
		Gerentes: []string{"355 CARLOS"},
		Fichas:   []string{"0301", "0412"},
	}

	resolved := Resolve("isso?", model.EntitySet{Fichas: []string{"0999"}}, c)

	for _, g := range c.UltimaEntidade.Gerentes {
		assert.Contains(t, resolved.Gerentes, g)
	}
	assert.Subset(t, resolved.Fichas, []string{"0301", "0412"})
}

func TestHistoricoCappedAtFive(t *testing.T) {
	c := New()
	for i := 0; i < 12; i++ {
		Resolve(fmt.Sprintf("pergunta %d", i), model.EntitySet{}, c)
		assert.LessOrEqual(t, len(c.Historico), HistoricoMax)
	}

	require.Len(t, c.Historico, HistoricoMax)
	// Most recent first.
	assert.Equal(t, "pergunta 11", c.Historico[0].Texto)
	assert.Equal(t, "pergunta 7", c.Historico[4].Texto)
}

func TestResolveRecordsAction(t *testing.T) {
	c := New()
	Resolve("listar gerentes", model.EntitySet{Acao: model.ActionListar, Topicos: []model.Topic{model.TopicGerentes}}, c)
	assert.Equal(t, model.ActionListar, c.UltimaAcao)

	// A turn without an action does not erase the remembered one.
	Resolve("bom dia", model.EntitySet{}, c)
	assert.Equal(t, model.ActionListar, c.UltimaAcao)
}
