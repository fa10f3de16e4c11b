package parser

import (
	"regexp"
	"strings"

	"github.com/finassist/extrato/internal/models"
)

// Header metadata patterns shared across formats. Banks vary the phrasing
// but not the vocabulary: agência, conta, período, saldo anterior/atual.
var (
	agencyRx  = regexp.MustCompile(`(?i)AG[ÊE]NCIA\s*[:\-]?\s*(\d+)`)
	accountRx = regexp.MustCompile(`(?i)CONTA\s*[:\-]?\s*([\d][\d.\-]*\d|\d)`)
	periodRx  = regexp.MustCompile(`(?i)PER[ÍI]ODO\s*[:\-]?\s*(\d{2}/\d{4})\s*(?:a|até|ate|-)\s*(\d{2}/\d{4})`)
	openRx    = regexp.MustCompile(`(?i)SALDO\s+ANTERIOR\s*[:\-]?\s*(?:R\$\s*)?([\d.]+,\d{2})`)
	closeRx   = regexp.MustCompile(`(?i)SALDO\s+(?:ATUAL|FINAL)\s*[:\-]?\s*(?:R\$\s*)?([\d.]+,\d{2})`)

	holderLabelRx = regexp.MustCompile(`(?i)^(?:TITULAR|CLIENTE|NOME|RAZÃO SOCIAL|RAZAO SOCIAL)\s*[:\-]?\s*(.+)$`)
)

// ParseHeader fills the statement-level metadata of info from the document
// text: account holder (name plus CPF/CNPJ), agência/conta, period and the
// opening/closing balances used by the sum-invariant check.
func ParseHeader(pages []string, rules *FormatRules, info *models.StatementInfo) {
	text := strings.Join(pages, "\n")

	if m := agencyRx.FindStringSubmatch(text); m != nil {
		info.Agency = m[1]
	}
	if m := accountRx.FindStringSubmatch(text); m != nil {
		info.Account = m[1]
	}
	if m := periodRx.FindStringSubmatch(text); m != nil {
		info.Period = m[1] + " - " + m[2]
	}
	if m := openRx.FindStringSubmatch(text); m != nil {
		if v, err := models.ParseMoney(m[1]); err == nil {
			info.OpeningBalance = v
			info.HasOpening = true
		}
	}
	if m := closeRx.FindStringSubmatch(text); m != nil {
		if v, err := models.ParseMoney(m[1]); err == nil {
			info.ClosingBalance = v
			info.HasClosing = true
		}
	}

	info.HolderName, info.HolderDocument = findHolder(text, rules)
}

// findHolder looks for a labeled holder line first, then falls back to the
// first header line carrying a CPF/CNPJ. The fallback stops at the first
// transaction line: counterparty documents on movements must not win.
func findHolder(text string, rules *FormatRules) (string, string) {
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > 30 {
		limit = 30
	}

	for _, line := range lines[:limit] {
		if m := holderLabelRx.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			name, doc := SplitNameDocument(m[1])
			if name != "" || doc != "" {
				return name, doc
			}
		}
	}

	headerEnd := limit
	for i, line := range lines[:limit] {
		if isTransactionStart(strings.TrimSpace(line), rules) {
			headerEnd = i
			break
		}
	}
	for _, line := range lines[:headerEnd] {
		if cpfRx.MatchString(line) || cnpjRx.MatchString(line) {
			return SplitNameDocument(line)
		}
	}
	return "", ""
}
