package parser

import (
	"strings"

	"github.com/finassist/extrato/internal/models"
)

// Classify tags one line under the active format's rules. prev is the tag of
// the previous line: continuation runs only extend a transaction in
// progress, and end at the next start, a blank line, or a noise pattern.
func Classify(line models.RawLine, prev models.LineTag, rules *FormatRules) models.LineTag {
	text := strings.TrimSpace(line.Text)
	if text == "" {
		return models.TagNoise
	}
	if matchesAny(text, sharedNoiseRx) || matchesAny(text, rules.NoiseRx) {
		return models.TagNoise
	}
	if isTransactionStart(text, rules) {
		return models.TagTransactionStart
	}
	if prev == models.TagTransactionStart || prev == models.TagContinuation {
		return models.TagContinuation
	}
	return models.TagNoise
}

// isTransactionStart requires a date token anchored by content near the line
// start (column alignment varies between exports, so offsets are loose) plus
// at least one amount-shaped token. Bare-date layouts accept a line that is
// nothing but the date.
func isTransactionStart(text string, rules *FormatRules) bool {
	if rules.BareDateStart && bareDateRx.MatchString(text) {
		return true
	}
	loc := rules.DateRx.FindStringIndex(text)
	if loc == nil || loc[0] > 3 {
		return false
	}
	return len(scanAmounts(text)) > 0
}

// GroupLines runs the classifier over a page and joins each TransactionStart
// with its continuation run into one logical group.
func GroupLines(page string, pageIdx int, rules *FormatRules) [][]models.RawLine {
	var groups [][]models.RawLine
	prev := models.TagNoise
	for i, raw := range strings.Split(page, "\n") {
		line := models.RawLine{Page: pageIdx, Line: i, Text: raw}
		tag := Classify(line, prev, rules)
		switch tag {
		case models.TagTransactionStart:
			groups = append(groups, []models.RawLine{line})
		case models.TagContinuation:
			if len(groups) > 0 {
				last := len(groups) - 1
				groups[last] = append(groups[last], line)
			}
		}
		prev = tag
	}
	return groups
}
