// Package store persists extracted transactions and the audit trail of
// import runs. The interface keeps the engine storage-agnostic; the shipped
// implementation is in-memory and suited to single-instance deployments.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/finassist/extrato/internal/models"
)

// ErrNotFound is returned when a lookup misses.
var ErrNotFound = errors.New("store: not found")

// ImportRecord is the audit entry written after each statement import.
type ImportRecord struct {
	ID         string             `json:"id"`
	Account    string             `json:"conta"`
	Format     models.BankFormat  `json:"banco"`
	FileName   string             `json:"arquivo,omitempty"`
	Imported   int                `json:"importadas"`
	Duplicates int                `json:"duplicadas"`
	Skipped    int                `json:"linhas_puladas"`
	Warnings   []models.Warning   `json:"avisos,omitempty"`
	CreatedAt  time.Time          `json:"criado_em"`
}

// Store is the persistence boundary of the import pipeline. Implementations
// must be safe for concurrent use.
type Store interface {
	// InsertTransactions appends transactions to an account's ledger.
	InsertTransactions(ctx context.Context, account string, txns []models.Transaction) error

	// ListTransactions returns the account's transactions in insertion order.
	ListTransactions(ctx context.Context, account string) ([]models.Transaction, error)

	// HasTransaction reports whether the account already holds the id.
	HasTransaction(ctx context.Context, account, id string) (bool, error)

	// RecordImport appends one import audit entry.
	RecordImport(ctx context.Context, rec ImportRecord) error

	// ListImports returns the account's import history, newest first.
	ListImports(ctx context.Context, account string) ([]ImportRecord, error)
}
