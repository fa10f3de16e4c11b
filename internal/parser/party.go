package parser

import (
	"strings"
	"unicode"
)

// SplitNameDocument separates a party name from a CPF or CNPJ in a free-text
// fragment. CPF is tried before CNPJ. The name keeps every Unicode letter —
// accented Portuguese names survive — and whitespace; everything else is
// stripped. Pure function: same input, same output, no state.
func SplitNameDocument(fragment string) (name, document string) {
	if m := cpfRx.FindString(fragment); m != "" {
		return cleanName(strings.Replace(fragment, m, "", 1)), m
	}
	if m := cnpjRx.FindString(fragment); m != "" {
		return cleanName(strings.Replace(fragment, m, "", 1)), m
	}
	return cleanName(fragment), ""
}

func cleanName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
