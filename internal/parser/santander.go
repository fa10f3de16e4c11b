package parser

import (
	"strings"

	"github.com/finassist/extrato/internal/models"
)

// Santander statements carry an "R$" before each value and no explicit sign
// marker; debits are inferred from movement keywords in the description.
//
// Example line:
//
//	12/12 PIX ENVIADO PARA EMPRESA XYZ R$ 1.500,00
var santanderRules = &FormatRules{
	Format:   models.FormatSantander,
	BankName: "Santander",
	Signatures: rx(
		`SANTANDER`, `banco santander`, `santander\.com\.br`, `\b033\b`,
	),
	DateRx: dateAnyRx,
	NoiseRx: rx(
		`^agência\b`,
		`^conta\b`,
		`saldo anterior`,
		`^saldo\b`,
		`^cliente\b`,
		`^titular\b`,
	),
	Sign: santanderSign,
}

var santanderDebitWords = []string{
	"PAGAMENTO", "PAGTO", "ENVIADO", "ENVIADA", "SAQUE", "COMPRA",
	"DÉBITO", "DEBITO", "TARIFA", "TAXA", "JUROS",
}

// santanderSign honors explicit markers first, then falls back to the
// debit-keyword convention of the format.
func santanderSign(line string, tok amountToken) (bool, bool) {
	if neg, known := signFromMarkers(line, tok); known {
		return neg, known
	}
	upper := strings.ToUpper(line)
	for _, w := range santanderDebitWords {
		if strings.Contains(upper, w) {
			return true, true
		}
	}
	return false, false
}
