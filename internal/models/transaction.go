package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// TxnType distinguishes credits from debits in a statement.
type TxnType string

const (
	TypeEntrada TxnType = "entrada"
	TypeSaida   TxnType = "saida"
)

// BankFormat identifies a supported statement layout.
type BankFormat string

const (
	FormatItau           BankFormat = "itau"
	FormatBradesco       BankFormat = "bradesco"
	FormatSantander      BankFormat = "santander"
	FormatNubank         BankFormat = "nubank"
	FormatBancoDoBrasil  BankFormat = "banco_do_brasil"
	FormatCaixaEconomica BankFormat = "caixa"
	FormatBancoInter     BankFormat = "inter"
	FormatUnknown        BankFormat = ""
)

// Formats lists the supported layouts in detection priority order. Ties in
// signature scoring are broken by position in this slice.
var Formats = []BankFormat{
	FormatItau,
	FormatBradesco,
	FormatSantander,
	FormatNubank,
	FormatBancoDoBrasil,
	FormatCaixaEconomica,
	FormatBancoInter,
}

// Transaction is the canonical output unit of an extraction run.
// Amount carries the sign; Type() is derived from it and can never diverge.
type Transaction struct {
	ID           string     `json:"id"`
	Date         time.Time  `json:"data"`
	Amount       Money      `json:"valor"`
	Description  string     `json:"descricao"`
	Category     string     `json:"categoria,omitempty"`
	Document     string     `json:"documento,omitempty"`
	Balance      Money      `json:"saldo"`
	HasBalance   bool       `json:"tem_saldo"`
	SourceFormat BankFormat `json:"banco"`
	Page         int        `json:"pagina"`
	Line         int        `json:"linha"`
}

// Type reports entrada for non-negative amounts and saida otherwise.
func (t Transaction) Type() TxnType {
	if t.Amount < 0 {
		return TypeSaida
	}
	return TypeEntrada
}

// DeriveID computes the stable identity of a transaction from its content,
// not its position, so re-processing the same statement yields the same id.
func DeriveID(date time.Time, amount Money, description string, format BankFormat) string {
	h := sha256.New()
	h.Write([]byte(date.Format("2006-01-02")))
	h.Write([]byte{'|'})
	h.Write([]byte(amount.String()))
	h.Write([]byte{'|'})
	h.Write([]byte(NormalizeDescription(description)))
	h.Write([]byte{'|'})
	h.Write([]byte(format))
	return hex.EncodeToString(h.Sum(nil))[:32]
}

// NormalizeDescription collapses whitespace and upper-cases the text so that
// layout-neutral changes in the source PDF do not change transaction ids.
func NormalizeDescription(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
