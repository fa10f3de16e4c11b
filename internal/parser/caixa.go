package parser

import "github.com/finassist/extrato/internal/models"

// Caixa Econômica statements append a D (débito) or C (crédito) letter after
// the value. Layout: Data | Histórico | Valor | D/C.
//
// Example line:
//
//	10/05/2024 CRED TED SALARIO 3.200,00 C
var caixaRules = &FormatRules{
	Format:   models.FormatCaixaEconomica,
	BankName: "Caixa Econômica Federal",
	Signatures: rx(
		`CAIXA ECON[ÔO]MICA`, `\bCEF\b`, `caixa\.gov\.br`, `\b104\b`,
	),
	DateRx: dateAnyRx,
	NoiseRx: rx(
		`^agência\b`,
		`^conta\b`,
		`saldo anterior`,
		`^saldo\b`,
	),
	Sign: signFromMarkers,
}
