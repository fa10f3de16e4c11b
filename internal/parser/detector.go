package parser

import (
	"fmt"
	"strings"

	"github.com/finassist/extrato/internal/models"
)

// Detect inspects the full document text and selects the bank format whose
// signature patterns score highest: one point per distinct signature found,
// ties broken by enumeration order. A zero best score aborts with
// ErrFormatUnrecognized; the engine never guesses a layout.
func Detect(pages []string) (models.BankFormat, error) {
	combined := strings.Join(pages, "\n")

	best := models.FormatUnknown
	bestScore := 0
	for _, rules := range allRules {
		score := 0
		for _, sig := range rules.Signatures {
			if sig.MatchString(combined) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = rules.Format
		}
	}

	if bestScore == 0 {
		return models.FormatUnknown, fmt.Errorf("%w: sample %q",
			ErrFormatUnrecognized, sample(combined, 160))
	}
	return best, nil
}

// sample returns the first n bytes of text for triage diagnostics, cut at a
// rune boundary.
func sample(text string, n int) string {
	text = strings.TrimSpace(text)
	if len(text) <= n {
		return text
	}
	for n > 0 && text[n]&0xC0 == 0x80 {
		n--
	}
	return text[:n] + "..."
}
