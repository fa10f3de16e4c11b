package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/finassist/extrato/internal/models"
)

// Options configures one extraction run. The zero value auto-detects the
// format, applies no size caps, and assigns no categories.
type Options struct {
	// Format skips auto-detection when set.
	Format models.BankFormat

	// MaxBytes and MaxLines cap the document size; exceeding either aborts
	// with ErrResourceLimit before any parsing happens.
	MaxBytes int
	MaxLines int

	// DefaultYear completes short DD/MM dates when the statement itself
	// gives no period or full date to infer the year from.
	DefaultYear int

	Categorize Categorizer

	// Logger receives per-line skip diagnostics. nil disables logging.
	Logger *zerolog.Logger
}

// Run executes the full extraction pipeline over the recovered page texts:
// detect → classify → extract → assemble, returning the statement with its
// transaction sequence and consistency warnings. Per-line failures are
// counted and skipped; only unrecognized formats and resource limits abort.
func Run(pages []string, opts Options) (*models.StatementInfo, error) {
	log := opts.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	if err := checkLimits(pages, opts); err != nil {
		return nil, err
	}

	format := opts.Format
	if format == models.FormatUnknown {
		detected, err := Detect(pages)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	rules, ok := RulesFor(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormatUnrecognized, format)
	}

	info := &models.StatementInfo{Format: format}
	ParseHeader(pages, rules, info)
	year := yearHint(pages, rules, info, opts)

	for pageIdx, page := range pages {
		var checker balanceChecker
		for _, group := range GroupLines(page, pageIdx, rules) {
			fields, err := ExtractFields(group, rules, year)
			if err != nil {
				info.SkippedLines++
				xe := &ExtractError{Format: format, Page: group[0].Page, Line: group[0].Line, Cause: err}
				log.Warn().
					Int("page", xe.Page).
					Int("line", xe.Line).
					Str("text", strings.TrimSpace(group[0].Text)).
					Err(err).
					Msg("line extraction failed")
				continue
			}
			txn := Assemble(fields, format, opts.Categorize)
			if w := checker.check(txn); w != nil {
				info.Warnings = append(info.Warnings, *w)
			}
			info.Transactions = append(info.Transactions, txn)
		}
	}

	checkSumInvariant(info)
	return info, nil
}

func checkLimits(pages []string, opts Options) error {
	totalBytes, totalLines := 0, 0
	for _, p := range pages {
		totalBytes += len(p)
		totalLines += strings.Count(p, "\n") + 1
	}
	if opts.MaxBytes > 0 && totalBytes > opts.MaxBytes {
		return fmt.Errorf("%w: %d bytes (cap %d)", ErrResourceLimit, totalBytes, opts.MaxBytes)
	}
	if opts.MaxLines > 0 && totalLines > opts.MaxLines {
		return fmt.Errorf("%w: %d lines (cap %d)", ErrResourceLimit, totalLines, opts.MaxLines)
	}
	return nil
}

// yearHint resolves the year used for short DD/MM dates: statement period
// first, then the format's own year header (Nubank month sections), then
// any full date in the document, then the configured default.
func yearHint(pages []string, rules *FormatRules, info *models.StatementInfo, opts Options) int {
	if info.Period != "" {
		parts := strings.Split(info.Period, "/")
		if len(parts) >= 2 {
			tail := parts[len(parts)-1]
			if y, err := strconv.Atoi(strings.TrimSpace(tail)); err == nil && y >= 2000 && y <= 2100 {
				return y
			}
		}
	}
	if rules.YearRx != nil {
		for _, p := range pages {
			if m := rules.YearRx.FindStringSubmatch(p); m != nil {
				if y, err := strconv.Atoi(m[1]); err == nil && y >= 2000 && y <= 2100 {
					return y
				}
			}
		}
	}
	for _, p := range pages {
		if m := dateFullRx.FindStringSubmatch(p); m != nil {
			if y, err := strconv.Atoi(m[3]); err == nil && y >= 2000 && y <= 2100 {
				return y
			}
		}
	}
	if opts.DefaultYear != 0 {
		return opts.DefaultYear
	}
	return time.Now().UTC().Year()
}

// checkSumInvariant verifies that the net of entradas and saídas matches the
// closing-minus-opening balance when the statement states both.
func checkSumInvariant(info *models.StatementInfo) {
	if !info.HasOpening || !info.HasClosing {
		return
	}
	var net models.Money
	for _, t := range info.Transactions {
		net += t.Amount
	}
	if info.OpeningBalance+net != info.ClosingBalance {
		info.Warnings = append(info.Warnings, models.Warning{
			Message: fmt.Sprintf("soma dos movimentos (%s) não fecha com saldo anterior %s e saldo atual %s",
				net, info.OpeningBalance, info.ClosingBalance),
		})
	}
}
