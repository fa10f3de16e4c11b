package parser

import "github.com/finassist/extrato/internal/models"

// Itaú PJ statements use DD/MM or DD/MM/YYYY dates and mark debits with a
// trailing minus on the amount ("1.500,00-"). PIX and boleto lines often
// carry the counter-party CNPJ between the description and the value, and
// the running balance column follows the value column.
//
// Example lines:
//
//	01/12/2024 SAQUE BANCO 24H 1.500,00- 5.234,56
//	05/12 PIX TRANSF EMPRESA XYZ LTDA 12.345.678/0001-23 2.000,00 7.234,56
var itauRules = &FormatRules{
	Format:   models.FormatItau,
	BankName: "Itaú",
	Signatures: rx(
		`ITAÚ`, `ITAU UNIBANCO`, `BANCO ITAÚ`, `itau\.com\.br`, `\b341\b`,
	),
	DateRx: dateAnyRx,
	NoiseRx: rx(
		`razão social`,
		`^agência\b`,
		`^conta\b`,
		`saldo anterior`,
		`^saldo\b`,
		`data lançamentos`,
	),
	Sign:        signFromMarkers,
	BalanceLast: true,
}
