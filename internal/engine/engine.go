// Package engine wires the query pipeline: normalization, entity
// extraction, context resolution, intent classification and response
// synthesis over a fresh data snapshot.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/marimarques/cobrador/internal/answer"
	"github.com/marimarques/cobrador/internal/common"
	"github.com/marimarques/cobrador/internal/conversation"
	"github.com/marimarques/cobrador/internal/intent"
	"github.com/marimarques/cobrador/internal/model"
	"github.com/marimarques/cobrador/internal/nlp"
)

// Desculpa is the generic apology returned when anything inside the
// pipeline fails unexpectedly. The engine never surfaces an error to the
// caller; the user-visible failure mode is always a string.
const Desculpa = "Desculpe, não consegui processar sua pergunta agora. Tente novamente."

// Collector supplies a fresh read-only snapshot of the business data for
// every question. Implementations must fail soft: a sub-source error
// yields an empty collection, not a failed snapshot.
type Collector interface {
	Collect(ctx context.Context) (model.Snapshot, error)
}

// Config holds the engine's tunables.
type Config struct {
	// LimiteDespesa is the expense alert threshold; zero means default.
	LimiteDespesa float64
}

// Engine answers free-form questions about the business data.
type Engine struct {
	collector Collector
	synth     *answer.Synthesizer
}

// New creates an engine backed by the given snapshot collector.
func New(collector Collector, cfg Config) *Engine {
	return &Engine{
		collector: collector,
		synth:     answer.New(cfg.LimiteDespesa),
	}
}

// Answer processes one question against the session context and returns a
// ready-to-display response. The context is mutated by the resolver; the
// caller owns serialization of concurrent questions into one session.
func (e *Engine) Answer(ctx context.Context, pergunta string, sessao *conversation.Context) (resposta string) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError(fmt.Errorf("panic: %v", r), "query pipeline failed", common.Fields{
				"pergunta": pergunta,
			})
			resposta = Desculpa
		}
	}()

	normalizado := nlp.Normalize(pergunta)
	extraidas := nlp.Extract(normalizado)
	resolvidas := conversation.Resolve(pergunta, extraidas, sessao)

	intencao := intent.Classify(normalizado, resolvidas)
	confianca := intent.Score(resolvidas)

	slog.Debug("query classified",
		"normalizado", normalizado,
		"intencao", intencao.Type,
		"confianca", confianca,
		"gerentes", len(resolvidas.Gerentes),
		"fichas", len(resolvidas.Fichas))

	// The snapshot is fetched fresh per question; a total fetch failure
	// degrades to an empty snapshot rather than an error.
	snap, err := e.collector.Collect(ctx)
	if err != nil {
		common.LogError(err, "snapshot collection failed", common.Fields{"pergunta": pergunta})
		snap = model.Snapshot{}
	}

	consulta := model.Query{
		Original:    pergunta,
		Normalizado: normalizado,
		Entidades:   resolvidas,
		Intencao:    intencao,
		Confianca:   confianca,
	}

	return e.synth.Synthesize(consulta, snap)
}
