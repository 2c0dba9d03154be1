package conversation

import (
	"regexp"
	"strings"

	"github.com/marimarques/cobrador/internal/model"
)

// Vague question shapes, matched against the whole trimmed original text.
// The original text is used instead of the normalized form so punctuation
// cues like a trailing "?" survive.
var formasVagas = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(ele|ela|eles|elas|isso|isto|esse|essa|este|esta|aquele|aquela)\s*\??$`),
	regexp.MustCompile(`(?i)^e\s+(ele|ela|esse|essa|este|esta|isso|isto|agora|depois)\s*\??$`),
	regexp.MustCompile(`(?i)^(quanto|quanta|qual|quais|quantos|quantas)\s*\??$`),
	regexp.MustCompile(`(?i)^(depois|agora)\s*\??$`),
	regexp.MustCompile(`(?i)^continua`),
}

// Vaga reports whether the text is an elliptical follow-up that needs the
// conversational memory to resolve.
func Vaga(texto string) bool {
	texto = strings.TrimSpace(texto)
	for _, re := range formasVagas {
		if re.MatchString(texto) {
			return true
		}
	}
	return false
}

// Resolve back-fills missing entities from the session memory and updates
// it with the outcome of this turn.
//
// When the question is vague, or when extraction found no manager and no
// ticket, the remembered subject is merged in by concatenation and the last
// topic carried over if none was extracted. The merged set is then written
// back as the new subject, so a chain of vague follow-ups reinforces the
// remembered subject rather than decaying it; that behavior is pinned by
// tests and must not be changed silently.
func Resolve(original string, ents model.EntitySet, c *Context) model.EntitySet {
	resolved := ents

	if Vaga(original) || !ents.TemSujeito() {
		if c.UltimaEntidade != nil {
			resolved.Gerentes = concat(resolved.Gerentes, c.UltimaEntidade.Gerentes)
			resolved.Fichas = concat(resolved.Fichas, c.UltimaEntidade.Fichas)
		}
		if len(resolved.Topicos) == 0 && c.UltimoTopico != "" {
			resolved.Topicos = []model.Topic{c.UltimoTopico}
		}
	}

	if resolved.TemSujeito() {
		c.UltimaEntidade = &Sujeito{
			Gerentes: concat(nil, resolved.Gerentes),
			Fichas:   concat(nil, resolved.Fichas),
		}
	}
	if len(resolved.Topicos) > 0 {
		c.UltimoTopico = resolved.Topicos[0]
	}
	if resolved.Acao != "" {
		c.UltimaAcao = resolved.Acao
	}

	c.registra(original, resolved)

	return resolved
}

// concat copies both slices into a fresh one so resolved sets never alias
// the context's memory.
func concat(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
