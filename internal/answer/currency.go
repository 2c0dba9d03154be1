package answer

import (
	"strconv"
	"strings"
)

// FormatBRL renders a monetary value in the fixed back-office convention:
// two decimals, dot as thousands separator, comma as decimal separator,
// prefixed with the currency marker. 1234.5 becomes "R$ 1.234,50".
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	inteiro, decimal, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + decimal
	if neg {
		out = "-" + out
	}
	return out
}
