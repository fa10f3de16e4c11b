package parser

import (
	"fmt"

	"github.com/finassist/extrato/internal/models"
)

// Categorizer maps a transaction description to a category name, or "" when
// no rule matches. Consulted during assembly; never fabricates a category.
type Categorizer func(description string) string

// Assemble builds the canonical transaction from extracted fields. The id is
// derived from content, so re-processing the same statement reproduces it.
func Assemble(f models.ExtractedFields, format models.BankFormat, categorize Categorizer) models.Transaction {
	t := models.Transaction{
		Date:         f.Date,
		Amount:       f.Amount,
		Description:  f.Description,
		Document:     f.Document,
		Balance:      f.Balance,
		HasBalance:   f.HasBalance,
		SourceFormat: format,
		Page:         f.Page,
		Line:         f.Line,
	}
	t.ID = models.DeriveID(t.Date, t.Amount, t.Description, format)
	if categorize != nil {
		t.Category = categorize(t.Description)
	}
	return t
}

// balanceChecker cross-checks the running balance within one contiguous run
// of transactions (one page/section). Some formats omit balances on fee
// lines, so a mismatch is a warning, never fatal.
type balanceChecker struct {
	prev    models.Money
	hasPrev bool
}

func (c *balanceChecker) check(t models.Transaction) *models.Warning {
	if !t.HasBalance {
		return nil
	}
	var w *models.Warning
	if c.hasPrev {
		if expected := c.prev + t.Amount; expected != t.Balance {
			w = &models.Warning{
				Page: t.Page,
				Line: t.Line,
				Message: fmt.Sprintf("saldo inconsistente: esperado %s, extrato informa %s",
					expected, t.Balance),
			}
		}
	}
	c.prev = t.Balance
	c.hasPrev = true
	return w
}
