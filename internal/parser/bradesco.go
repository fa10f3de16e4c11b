package parser

import "github.com/finassist/extrato/internal/models"

// Bradesco statements use short DD/MM dates and a leading minus on debit
// amounts. Layout: Data | Histórico | Valor.
//
// Example line:
//
//	12/03 PAGTO CONTA LUZ -185,40
var bradescoRules = &FormatRules{
	Format:   models.FormatBradesco,
	BankName: "Bradesco",
	Signatures: rx(
		`BRADESCO`, `banco bradesco`, `bradesco\.com\.br`, `\b237\b`,
	),
	DateRx: dateAnyRx,
	NoiseRx: rx(
		`^agência\b`,
		`^conta\b`,
		`saldo anterior`,
		`^saldo\b`,
		`^extrato de\b`,
	),
	Sign: signFromMarkers,
}
