package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/finassist/extrato/internal/models"
)

// JSONWriter writes the full statement, transactions and summary included,
// as indented JSON.
type JSONWriter struct{}

type jsonDocument struct {
	Statement *models.StatementInfo `json:"extrato"`
	Summary   models.Summary        `json:"resumo"`
}

// WriteToFile writes the statement as JSON to the given path.
func (w *JSONWriter) WriteToFile(path string, info *models.StatementInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, info)
}

// Write writes the statement as JSON to the given writer.
func (w *JSONWriter) Write(out io.Writer, info *models.StatementInfo) error {
	doc := jsonDocument{
		Statement: info,
		Summary:   models.Summarize(info.Transactions, len(info.Warnings)),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
