package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/finassist/extrato/internal/models"
)

// amountToken is one amount-shaped token found on a line, with the span of
// the full adorned match and the sign evidence the adornments carry.
type amountToken struct {
	value string // numeric text, e.g. "1.234,56"
	start int
	end   int
	neg   bool // explicit debit marker: leading/trailing minus, (-), D
	pos   bool // explicit credit marker: (+), C
}

// Adorned amount: optional leading minus and R$, the Brazilian-formatted
// number, then any of the per-bank sign suffixes (trailing minus, (+)/(-),
// or a D/C column letter).
var amountRx = regexp.MustCompile(
	`(?:(-)\s?)?(?:R\$\s*)?(\d{1,3}(?:\.\d{3})*,\d{2}|\d+,\d{2})(-)?(?:\s*\(([+-])\))?(?:\s+([DC])\b)?`)

func scanAmounts(line string) []amountToken {
	matches := amountRx.FindAllStringSubmatchIndex(line, -1)
	toks := make([]amountToken, 0, len(matches))
	for _, m := range matches {
		tok := amountToken{
			value: line[m[4]:m[5]],
			start: m[0],
			end:   m[1],
		}
		if m[2] >= 0 || m[6] >= 0 {
			tok.neg = true
		}
		if m[8] >= 0 {
			switch line[m[8]:m[9]] {
			case "-":
				tok.neg = true
			case "+":
				tok.pos = true
			}
		}
		if m[10] >= 0 {
			switch line[m[10]:m[11]] {
			case "D":
				tok.neg = true
			case "C":
				tok.pos = true
			}
		}
		toks = append(toks, tok)
	}
	return toks
}

// signFromMarkers is the baseline sign rule: trust only explicit markers
// attached to the token itself.
func signFromMarkers(_ string, tok amountToken) (bool, bool) {
	if tok.neg {
		return true, true
	}
	if tok.pos {
		return false, true
	}
	return false, false
}

// parseDate validates and parses a DD/MM or DD/MM/YYYY token. Short dates
// take the year hint; implausible dates are extraction failures, never
// silently clamped.
func parseDate(s string, yearHint int) (time.Time, error) {
	m := dateAnyRx.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("no date token in %q", s)
	}
	day := atoi2(m[1])
	month := atoi2(m[2])
	year := yearHint
	if m[3] != "" {
		year = atoi4(m[3])
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("implausible month %d in %q", month, s)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("implausible day %d in %q", day, s)
	}
	if year < 2000 || year > 2100 {
		return time.Time{}, fmt.Errorf("implausible year %d in %q", year, s)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("nonexistent calendar date %q", s)
	}
	return d, nil
}

func atoi2(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func atoi4(s string) int { return atoi2(s) }

// CPF before CNPJ, by convention.
var (
	cpfRx  = regexp.MustCompile(`\d{3}\.\d{3}\.\d{3}-\d{2}`)
	cnpjRx = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`)
)

var leadingNumbersRx = regexp.MustCompile(`^(?:\d{4,}\s+)+`)

// ExtractFields pulls date, signed amount, description, optional balance and
// optional document fragment from one logical transaction (the start line
// plus its continuation lines), under the given format's layout rules.
func ExtractFields(group []models.RawLine, rules *FormatRules, yearHint int) (models.ExtractedFields, error) {
	if len(group) == 0 {
		return models.ExtractedFields{}, fmt.Errorf("empty line group")
	}
	ref := group[0]
	out := models.ExtractedFields{Page: ref.Page, Line: ref.Line}

	start := strings.TrimSpace(ref.Text)

	// Date: first date-shaped token on the start line. For dual-date layouts
	// the second token (posting date) wins.
	dateSpans := rules.DateRx.FindAllStringIndex(start, 2)
	if len(dateSpans) == 0 || dateSpans[0][0] > 3 {
		return out, fmt.Errorf("no date token at line start: %q", start)
	}
	dateSpan := dateSpans[0]
	usedSpans := [][]int{dateSpans[0]}
	if rules.DualDate && len(dateSpans) == 2 {
		dateSpan = dateSpans[1]
		usedSpans = dateSpans
	}
	date, err := parseDate(start[dateSpan[0]:dateSpan[1]], yearHint)
	if err != nil {
		return out, err
	}
	out.Date = date

	// Amount: scan the first line of the group that carries amount tokens.
	// Normally that is the start line; for bare-date layouts it is the
	// detail line that follows it.
	amountIdx := -1
	var toks []amountToken
	for i, ln := range group {
		if t := scanAmounts(strings.TrimSpace(ln.Text)); len(t) > 0 {
			amountIdx = i
			toks = t
			break
		}
	}
	if amountIdx < 0 {
		return out, fmt.Errorf("no amount token: %q", start)
	}

	// Rightmost token is the value and the second-rightmost the running
	// balance, unless the format's layout puts the balance column last.
	valueTok := toks[len(toks)-1]
	var balanceTok *amountToken
	if len(toks) >= 2 {
		balanceTok = &toks[len(toks)-2]
		if rules.BalanceLast {
			valueTok, balanceTok = *balanceTok, &toks[len(toks)-1]
		}
	}

	amount, err := models.ParseMoney(valueTok.value)
	if err != nil {
		return out, fmt.Errorf("bad amount %q: %w", valueTok.value, err)
	}

	logical := joinLines(group)
	neg, known := rules.Sign(logical, valueTok)
	if neg {
		amount = -amount.Abs()
	}
	out.Amount = amount
	out.SignKnown = known

	if balanceTok != nil {
		bal, err := models.ParseMoney(balanceTok.value)
		if err == nil {
			out.Balance = bal
			out.HasBalance = true
		}
	}

	// Description: everything except the date and the consumed amount
	// columns, across the whole group, whitespace-collapsed.
	var parts []string
	for i, ln := range group {
		t := strings.TrimSpace(ln.Text)
		var cuts [][]int
		if i == 0 {
			cuts = append(cuts, usedSpans...)
		}
		if i == amountIdx {
			cuts = append(cuts, []int{valueTok.start, valueTok.end})
			if balanceTok != nil {
				cuts = append(cuts, []int{balanceTok.start, balanceTok.end})
			}
		}
		parts = append(parts, cutSpans(t, cuts))
	}
	desc := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")

	if rules.StripLeadingNumbers {
		desc = leadingNumbersRx.ReplaceAllString(desc, "")
	}
	for _, w := range rules.StripWords {
		if len(desc) >= len(w) && strings.EqualFold(desc[:len(w)], w) {
			desc = strings.TrimSpace(desc[len(w):])
			break
		}
	}

	// Counter-party document travels separately from the description text.
	if doc := cpfRx.FindString(desc); doc != "" {
		out.Document = doc
		desc = strings.Replace(desc, doc, "", 1)
	} else if doc := cnpjRx.FindString(desc); doc != "" {
		out.Document = doc
		desc = strings.Replace(desc, doc, "", 1)
	}
	out.Description = strings.Join(strings.Fields(desc), " ")

	if out.Description == "" {
		return out, fmt.Errorf("empty description after extraction: %q", start)
	}
	return out, nil
}

func joinLines(group []models.RawLine) string {
	parts := make([]string, 0, len(group))
	for _, ln := range group {
		parts = append(parts, strings.TrimSpace(ln.Text))
	}
	return strings.Join(parts, " ")
}

// cutSpans removes the given [start,end) spans from s. Spans must not
// overlap; order does not matter.
func cutSpans(s string, spans [][]int) string {
	if len(spans) == 0 {
		return s
	}
	keep := make([]bool, len(s))
	for i := range keep {
		keep[i] = true
	}
	for _, sp := range spans {
		for i := sp[0]; i < sp[1] && i < len(s); i++ {
			keep[i] = false
		}
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if keep[i] {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
