package parser

import (
	"strings"

	"github.com/finassist/extrato/internal/models"
)

// Nubank statements lead each line with two short dates (operation and
// posting; the posting date wins) followed by an Entrada/Saída column that
// is the sign marker, not part of the description. Debit values may also
// carry a leading "-R$". The year never appears in the dates; it comes from
// the month-section headers ("Outubro de 2024").
//
// Example lines:
//
//	31/10 31/10 Saída PIX Recorrência Pix enviada para ACADEMIA -R$ 50,00
//	31/10 31/10 Entrada PIX Recebido de FULANO DE TAL R$ 100,00
var nubankRules = &FormatRules{
	Format:   models.FormatNubank,
	BankName: "Nubank",
	Signatures: rx(
		`NUBANK`, `NU PAGAMENTOS`, `nubank\.com\.br`, `\b260\b`,
		`cheque especial contratado`, `extrato exportado`,
	),
	DateRx: dateShortRx,
	NoiseRx: rx(
		`^saldo\b`,
		`^tipo\b`,
		`^extrato\b`,
	),
	Sign:       nubankSign,
	DualDate:   true,
	YearRx:     monthYearRx,
	StripWords: []string{"Entrada PIX", "Saída PIX", "Saida PIX", "Entrada", "Saída", "Saida", "PIX"},
}

// nubankSign reads the Entrada/Saída column when no explicit minus is present.
func nubankSign(line string, tok amountToken) (bool, bool) {
	if neg, known := signFromMarkers(line, tok); known {
		return neg, known
	}
	upper := strings.ToUpper(line)
	if strings.Contains(upper, "SAÍDA") || strings.Contains(upper, "SAIDA") {
		return true, true
	}
	if strings.Contains(upper, "ENTRADA") {
		return false, true
	}
	return false, false
}
