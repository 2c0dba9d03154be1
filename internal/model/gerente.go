package model

import (
	"strings"
	"time"
)

// Gerente is a field agent identified by a 3-digit code.
type Gerente struct {
	CriadoEm time.Time
	Codigo   string // 3-digit code, e.g. "355"
	Nome     string
	Telefone string
	Regiao   string
	Ativo    bool
}

// Referencia is the canonical mention form used by the query engine:
// "<code> <NAME>", e.g. "355 CARLOS".
func (g *Gerente) Referencia() string {
	return g.Codigo + " " + strings.ToUpper(g.Nome)
}
