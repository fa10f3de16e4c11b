package store

import (
	"context"
	"sync"

	"github.com/finassist/extrato/internal/models"
)

// Memory is an in-memory Store safe for concurrent use. Data lives for the
// process lifetime; it backs the CLI, the HTTP server and the tests.
type Memory struct {
	mu      sync.RWMutex
	txns    map[string][]models.Transaction
	ids     map[string]map[string]struct{}
	imports map[string][]ImportRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		txns:    make(map[string][]models.Transaction),
		ids:     make(map[string]map[string]struct{}),
		imports: make(map[string][]ImportRecord),
	}
}

func (m *Memory) InsertTransactions(ctx context.Context, account string, txns []models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ids[account] == nil {
		m.ids[account] = make(map[string]struct{})
	}
	for _, t := range txns {
		m.txns[account] = append(m.txns[account], t)
		m.ids[account][t.ID] = struct{}{}
	}
	return nil
}

func (m *Memory) ListTransactions(ctx context.Context, account string) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Transaction, len(m.txns[account]))
	copy(out, m.txns[account])
	return out, nil
}

func (m *Memory) HasTransaction(ctx context.Context, account, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.ids[account][id]
	return ok, nil
}

func (m *Memory) RecordImport(ctx context.Context, rec ImportRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	// Newest first.
	m.imports[rec.Account] = append([]ImportRecord{rec}, m.imports[rec.Account]...)
	return nil
}

func (m *Memory) ListImports(ctx context.Context, account string) ([]ImportRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ImportRecord, len(m.imports[account]))
	copy(out, m.imports[account])
	return out, nil
}

var _ Store = (*Memory)(nil)
