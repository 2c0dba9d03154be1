// Package intent maps normalized question text plus resolved entities onto
// one labeled intent, and scores the overall confidence that gates whether
// an answer is attempted at all.
package intent

import (
	"strings"

	"github.com/marimarques/cobrador/internal/model"
)

// regra is one entry of the classification decision list. Evaluation order
// is part of the contract: the first rule whose condition holds wins.
type regra struct {
	nome string
	eval func(texto string, e model.EntitySet) (model.Intent, bool)
}

var regras = []regra{
	{
		nome: "maior_devedor",
		eval: func(t string, e model.EntitySet) (model.Intent, bool) {
			if strings.Contains(t, "maior") && (temTopico(e, model.TopicDevedores) || strings.Contains(t, "aberto")) {
				return model.Intent{Type: model.IntentMaiorDevedor, Confidence: 0.9}, true
			}
			return model.Intent{}, false
		},
	},
	{
		nome: "total_prestacoes",
		eval: func(t string, e model.EntitySet) (model.Intent, bool) {
			if strings.Contains(t, "total") && temTopico(e, model.TopicPrestacoes) {
				return model.Intent{Type: model.IntentTotalPrestacoes, Confidence: 0.9}, true
			}
			return model.Intent{}, false
		},
	},
	{
		nome: "total_despesas",
		eval: func(t string, e model.EntitySet) (model.Intent, bool) {
			if strings.Contains(t, "total") && temTopico(e, model.TopicDespesas) {
				return model.Intent{Type: model.IntentTotalDespesas, Confidence: 0.9}, true
			}
			return model.Intent{}, false
		},
	},
	{
		nome: "despesas_acima",
		eval: func(t string, _ model.EntitySet) (model.Intent, bool) {
			if strings.Contains(t, "acima") || strings.Contains(t, "estour") || strings.Contains(t, "alert") {
				return model.Intent{Type: model.IntentDespesasAcima, Confidence: 0.85}, true
			}
			return model.Intent{}, false
		},
	},
	{
		nome: "listar_gerentes",
		eval: func(t string, _ model.EntitySet) (model.Intent, bool) {
			lista := strings.Contains(t, "lista") || strings.Contains(t, "quais") || strings.Contains(t, "todos")
			if lista && strings.Contains(t, "gerente") {
				return model.Intent{Type: model.IntentListarGerentes, Confidence: 0.9}, true
			}
			return model.Intent{}, false
		},
	},
	{
		nome: "quantos_gerentes",
		eval: func(t string, _ model.EntitySet) (model.Intent, bool) {
			if strings.Contains(t, "quantos gerente") {
				return model.Intent{Type: model.IntentListarGerentes, Confidence: 0.9}, true
			}
			return model.Intent{}, false
		},
	},
	{
		nome: "gerente_mencionado",
		eval: func(_ string, e model.EntitySet) (model.Intent, bool) {
			if len(e.Gerentes) == 0 {
				return model.Intent{}, false
			}
			switch {
			case temTopico(e, model.TopicPrestacoes):
				return model.Intent{Type: model.IntentPrestacaoGerente, Confidence: 0.9}, true
			case temTopico(e, model.TopicDespesas):
				return model.Intent{Type: model.IntentDespesasGerente, Confidence: 0.9}, true
			default:
				return model.Intent{Type: model.IntentInfoGerente, Confidence: 0.7}, true
			}
		},
	},
	{
		nome: "ficha_mencionada",
		eval: func(_ string, e model.EntitySet) (model.Intent, bool) {
			if len(e.Fichas) > 0 {
				return model.Intent{Type: model.IntentInfoFicha, Confidence: 0.85}, true
			}
			return model.Intent{}, false
		},
	},
	{
		nome: "resumo_geral",
		eval: func(t string, _ model.EntitySet) (model.Intent, bool) {
			if strings.Contains(t, "resumo") || strings.Contains(t, "visao geral") || strings.Contains(t, "status") {
				return model.Intent{Type: model.IntentResumoGeral, Confidence: 0.8}, true
			}
			return model.Intent{}, false
		},
	},
}

// Classify runs the decision list over normalized text and the resolved
// entity set. It is deterministic: same inputs, same label and confidence.
func Classify(texto string, e model.EntitySet) model.Intent {
	for _, r := range regras {
		if it, ok := r.eval(texto, e); ok {
			return it
		}
	}
	return model.Intent{Type: model.IntentDesconhecido, Confidence: 0.3}
}

// Score computes the overall confidence, independent of the classified
// intent: base 0.5 plus a bonus per non-empty entity category, capped at
// 1.0. A question with no recognized entities at all scores below the
// synthesis gate, forcing a clarification response.
func Score(e model.EntitySet) float64 {
	bonus := 0.0
	if len(e.Gerentes) > 0 {
		bonus += 0.2
	}
	if len(e.Fichas) > 0 {
		bonus += 0.15
	}
	if len(e.Topicos) > 0 {
		bonus += 0.15
	}
	if e.Acao != "" {
		bonus += 0.10
	}
	if bonus == 0 {
		return 0.4
	}
	score := 0.5 + bonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func temTopico(e model.EntitySet, t model.Topic) bool {
	for _, cur := range e.Topicos {
		if cur == t {
			return true
		}
	}
	return false
}
