package parser

import "github.com/finassist/extrato/internal/models"

// Banco Inter statements follow the generic Data | Descrição | Valor shape
// with a leading minus on debits.
//
// Example line:
//
//	22/07/2024 Pix enviado Mercado Livre -89,90
var interRules = &FormatRules{
	Format:   models.FormatBancoInter,
	BankName: "Banco Inter",
	Signatures: rx(
		`BANCO INTER`, `bancointer\.com\.br`, `\b077\b`,
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
