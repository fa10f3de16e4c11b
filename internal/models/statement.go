package models

import "time"

// RawLine is one line of recovered text with its source position, kept for
// error reporting and continuation joining.
type RawLine struct {
	Page int
	Line int
	Text string
}

// LineTag is the classifier's verdict for a single line.
type LineTag int

const (
	TagNoise LineTag = iota
	TagTransactionStart
	TagContinuation
)

func (t LineTag) String() string {
	switch t {
	case TagTransactionStart:
		return "transaction_start"
	case TagContinuation:
		return "continuation"
	default:
		return "noise"
	}
}

// ClassifiedLine is a RawLine plus its classification.
type ClassifiedLine struct {
	RawLine
	Tag LineTag
}

// ExtractedFields holds the fields pulled from one logical transaction line
// (start line plus joined continuations) before assembly.
type ExtractedFields struct {
	Date        time.Time
	Amount      Money
	SignKnown   bool
	Description string
	Document    string
	Balance     Money
	HasBalance  bool
	Page        int
	Line        int
}

// Warning is a non-fatal consistency finding surfaced in the run summary.
type Warning struct {
	Page    int    `json:"pagina"`
	Line    int    `json:"linha"`
	Message string `json:"mensagem"`
}

// StatementInfo is the full result of one extraction run: header metadata,
// the transaction sequence, and any consistency warnings.
type StatementInfo struct {
	Format          BankFormat    `json:"banco"`
	HolderName      string        `json:"titular,omitempty"`
	HolderDocument  string        `json:"cpf_cnpj_titular,omitempty"`
	Agency          string        `json:"agencia,omitempty"`
	Account         string        `json:"conta,omitempty"`
	Period          string        `json:"periodo,omitempty"`
	OpeningBalance  Money         `json:"saldo_anterior,omitempty"`
	HasOpening      bool          `json:"-"`
	ClosingBalance  Money         `json:"saldo_atual,omitempty"`
	HasClosing      bool          `json:"-"`
	Transactions    []Transaction `json:"transacoes"`
	Warnings        []Warning     `json:"avisos,omitempty"`
	SkippedLines    int           `json:"linhas_descartadas"`
}

// Summary mirrors the per-import statistics of the verification tooling:
// counts by type, sums of entradas and saídas, and the covered period.
type Summary struct {
	Total       int       `json:"total_movimentos"`
	Entradas    int       `json:"entradas"`
	Saidas      int       `json:"saidas"`
	SumEntradas Money     `json:"total_entradas"`
	SumSaidas   Money     `json:"total_saidas"`
	PeriodStart time.Time `json:"periodo_inicio,omitempty"`
	PeriodEnd   time.Time `json:"periodo_fim,omitempty"`
	Duplicates  int       `json:"duplicatas"`
	Warnings    int       `json:"avisos"`
}

// Summarize computes the Summary for a transaction sequence.
func Summarize(txns []Transaction, warnings int) Summary {
	s := Summary{Total: len(txns), Warnings: warnings}
	for _, t := range txns {
		if t.Type() == TypeEntrada {
			s.Entradas++
			s.SumEntradas += t.Amount
		} else {
			s.Saidas++
			s.SumSaidas += t.Amount.Abs()
		}
		if s.PeriodStart.IsZero() || t.Date.Before(s.PeriodStart) {
			s.PeriodStart = t.Date
		}
		if t.Date.After(s.PeriodEnd) {
			s.PeriodEnd = t.Date
		}
	}
	return s
}
