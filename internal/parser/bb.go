package parser

import "github.com/finassist/extrato/internal/models"

// Banco do Brasil statements are tabular: Dia, Lote, Documento, Histórico,
// Valor, with the sign given as a (+) or (-) suffix after the value. Some
// exports put the date alone on its own line and the movement detail on the
// next one.
//
// Example lines:
//
//	03/11/2025 99021 612365000056816 Transferência recebida 370,00 (+)
//	03/11/2025
//	99021 612365000056816 Pix - Enviado POSTO CASA CAIADA 89,90 (-)
var bbRules = &FormatRules{
	Format:   models.FormatBancoDoBrasil,
	BankName: "Banco do Brasil",
	Signatures: rx(
		`BANCO DO BRASIL`, `bb\.com\.br`, `\bBB\b`, `\b001\b`,
	),
	DateRx: dateFullRx,
	NoiseRx: rx(
		`^dia\b`,
		`^lote\b`,
		`saldo anterior`,
		`^saldo\b`,
		`^agência\b`,
		`^conta\b`,
	),
	Sign:                signFromMarkers,
	BareDateStart:       true,
	StripLeadingNumbers: true,
}
