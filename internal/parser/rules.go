package parser

import (
	"regexp"

	"github.com/finassist/extrato/internal/models"
)

// SignRule decides the sign of an amount token under one bank's convention.
// It returns (negative, known); when known is false the assembler applies
// the default of treating the movement as entrada.
type SignRule func(line string, tok amountToken) (negative, known bool)

// FormatRules is the per-bank rule set: signature patterns for detection,
// the date anchor for line classification, noise patterns, and the
// field-layout conventions. Adding a bank means adding one of these,
// not touching the shared pipeline.
type FormatRules struct {
	Format   models.BankFormat
	BankName string

	// Signatures are matched case-insensitively against the whole document;
	// the detector scores one point per distinct pattern found.
	Signatures []*regexp.Regexp

	// DateRx recognizes the date token that anchors a transaction line.
	DateRx *regexp.Regexp

	// NoiseRx are format-specific header/footer patterns on top of the
	// shared cross-format set.
	NoiseRx []*regexp.Regexp

	Sign SignRule

	// BalanceLast marks layouts where the running balance column follows
	// the value column, inverting the rightmost-token convention.
	BalanceLast bool

	// BareDateStart marks layouts where the date can stand alone on its own
	// line with the movement detail on the next line (Banco do Brasil).
	BareDateStart bool

	// DualDate marks layouts with operation and posting dates side by side;
	// the second (posting) date wins.
	DualDate bool

	// YearRx captures the year for short-date layouts whose statements
	// carry it in a section header instead of a period line (Nubank's
	// "Outubro de 2024" month sections). First capture group is the year.
	YearRx *regexp.Regexp

	// StripLeadingNumbers removes lote/documento digit columns that sit
	// between the date and the histórico text.
	StripLeadingNumbers bool

	// StripWords are marker words removed from the start of the description
	// (e.g. Nubank's Entrada/Saída column, which is the sign, not text).
	StripWords []string
}

// allRules is ordered by models.Formats; detection ties break on position.
var allRules = []*FormatRules{
	itauRules,
	bradescoRules,
	santanderRules,
	nubankRules,
	bbRules,
	caixaRules,
	interRules,
}

// RulesFor returns the rule set for a detected format.
func RulesFor(f models.BankFormat) (*FormatRules, bool) {
	for _, r := range allRules {
		if r.Format == f {
			return r, true
		}
	}
	return nil, false
}

func rx(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile("(?i)"+p))
	}
	return out
}

// Shared date shapes. Full dates are unambiguous; short DD/MM dates need a
// year hint taken from the statement period.
var (
	dateFullRx  = regexp.MustCompile(`\b(\d{2})/(\d{2})/(\d{4})\b`)
	dateShortRx = regexp.MustCompile(`\b(\d{2})/(\d{2})\b(?:[^/]|$)`)
	dateAnyRx   = regexp.MustCompile(`\b(\d{2})/(\d{2})(?:/(\d{4}))?\b`)
	bareDateRx  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

	// Month-section headers, e.g. "Outubro de 2024".
	monthYearRx = regexp.MustCompile(`(?i)\b(?:janeiro|fevereiro|mar[çc]o|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro)\s+de\s+(\d{4})\b`)
)

// Cross-format noise: page numbers, separators, column headers, SAC footers.
var sharedNoiseRx = rx(
	`^página\s+\d+`,
	`^page\s+\d+`,
	`^folha\s+\d+`,
	`^[-=_*\s]{8,}$`,
	`^data\s+.*(histórico|historico|lançamento|lancamento|descrição|descricao).*valor`,
	`^dia\s+lote\s+documento`,
	`sac\s+\d{4}`,
	`ouvidoria`,
	`central de atendimento`,
	`^total\b`,
	`^subtotal\b`,
	`^lançamentos do período`,
)

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
