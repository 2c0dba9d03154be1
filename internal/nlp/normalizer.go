// Package nlp implements the text normalization and entity extraction
// passes of the query engine.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sinonimos maps colloquial vocabulary onto the canonical terms the
// extractor and classifier expect. Rules are applied sequentially over the
// same buffer, in table order, so a later rule may match text produced by
// an earlier one.
var sinonimos = []struct {
	de   string
	para string
}{
	{"gerenciador", "gerente"},
	{"responsavel", "gerente"},
	{"boleto", "prestacao"},
	{"cobranca", "prestacao"},
	{"acerto", "prestacao"},
	{"gasto", "despesa"},
	{"devendo mais", "maior devedor"},
	{"deve mais", "maior devedor"},
	{"faturamento", "vendas"},
	{"a pagar", "apagar"},
	{"esse mes", "mes atual"},
	{"este mes", "mes atual"},
}

// removeAcentos decomposes to NFD and drops combining marks, so "cartão"
// becomes "cartao" and "prestações" becomes "prestacoes".
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases the text, strips diacritics and rewrites synonyms
// into the canonical vocabulary. It always returns a string; empty input
// yields an empty string. Normalize is idempotent.
func Normalize(text string) string {
	s := strings.ToLower(text)
	if out, _, err := transform.String(removeAcentos, s); err == nil {
		s = out
	}
	for _, r := range sinonimos {
		s = strings.ReplaceAll(s, r.de, r.para)
	}
	return s
}
