// Package writer renders extraction results to CSV and JSON.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/finassist/extrato/internal/models"
)

// CSVWriter writes transactions to CSV format. Values keep the Brazilian
// decimal comma, so the field separator is the semicolon.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, info *models.StatementInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, info)
}

// Write writes transactions in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, info *models.StatementInfo) error {
	writer := csv.NewWriter(out)
	writer.Comma = ';'
	defer writer.Flush()

	// Write metadata as comments (CSV header rows)
	if w.IncludeHeader {
		if info.Format != "" {
			writer.Write([]string{"# Banco", string(info.Format)})
		}
		if info.HolderName != "" {
			writer.Write([]string{"# Titular", info.HolderName})
		}
		if info.HolderDocument != "" {
			writer.Write([]string{"# Documento", info.HolderDocument})
		}
		if info.Agency != "" {
			writer.Write([]string{"# Agência", info.Agency})
		}
		if info.Account != "" {
			writer.Write([]string{"# Conta", info.Account})
		}
		if info.Period != "" {
			writer.Write([]string{"# Período", info.Period})
		}
	}

	header := []string{"Data", "Descrição", "Tipo", "Valor", "Saldo", "Categoria", "Documento"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range info.Transactions {
		balance := ""
		if txn.HasBalance {
			balance = txn.Balance.String()
		}
		row := []string{
			txn.Date.Format("02/01/2006"),
			txn.Description,
			string(txn.Type()),
			txn.Amount.String(),
			balance,
			txn.Category,
			txn.Document,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
