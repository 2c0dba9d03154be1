// Package conversation holds the bounded session memory that lets vague
// follow-up questions ("E esse?") resolve against the last explicit subject.
package conversation

import (
	"time"

	"github.com/marimarques/cobrador/internal/model"
)

// HistoricoMax is the turn history capacity. Older turns are evicted.
const HistoricoMax = 5

// Sujeito is the most recent explicit subject of the conversation.
type Sujeito struct {
	Gerentes []string
	Fichas   []string
}

// Turno is one processed question kept in the session history.
type Turno struct {
	Timestamp time.Time
	Texto     string
	Entidades model.EntitySet
}

// Context is the per-session conversational memory. It lives only for the
// session: it is memory-only on purpose and is never persisted.
//
// The engine assumes single-writer access; the host UI serializes questions.
type Context struct {
	UltimaEntidade *Sujeito
	UltimoTopico   model.Topic
	UltimaAcao     model.Action
	Historico      []Turno // most recent first, at most HistoricoMax
}

// New creates an empty conversational context for a fresh session.
func New() *Context {
	return &Context{}
}

// registra pushes a turn at the front of the history and truncates it to
// the capacity.
func (c *Context) registra(texto string, ents model.EntitySet) {
	c.Historico = append([]Turno{{
		Timestamp: time.Now(),
		Texto:     texto,
		Entidades: ents,
	}}, c.Historico...)
	if len(c.Historico) > HistoricoMax {
		c.Historico = c.Historico[:HistoricoMax]
	}
}
