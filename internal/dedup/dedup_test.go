package dedup

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finassist/extrato/internal/models"
	"github.com/finassist/extrato/internal/store"
)

func txn(day int, amount models.Money, desc string) models.Transaction {
	date := time.Date(2024, 12, day, 0, 0, 0, 0, time.UTC)
	return models.Transaction{
		ID:          models.DeriveID(date, amount, desc, models.FormatItau),
		Date:        date,
		Amount:      amount,
		Description: desc,
	}
}

func TestInsertSameStatementTwice(t *testing.T) {
	ctx := context.Background()
	d := New(store.NewMemory())

	batch := []models.Transaction{
		txn(1, 100000, "PIX RECEBIDO CLIENTE A"),
		txn(2, -50000, "SAQUE BANCO 24H"),
		txn(3, -3000, "TARIFA MENSALIDADE"),
	}

	inserted, dups, err := d.Insert(ctx, "conta-1", batch)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Equal(t, 0, dups)

	inserted, dups, err = d.Insert(ctx, "conta-1", batch)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted, "re-importing the same statement adds nothing")
	assert.Equal(t, 3, dups)
}

func TestInsertOverlappingStatements(t *testing.T) {
	ctx := context.Background()
	d := New(store.NewMemory())

	week1 := []models.Transaction{
		txn(1, 100000, "PIX RECEBIDO CLIENTE A"),
		txn(5, -50000, "SAQUE BANCO 24H"),
	}
	week2 := []models.Transaction{
		txn(5, -50000, "SAQUE BANCO 24H"), // overlap
		txn(9, -3000, "TARIFA MENSALIDADE"),
	}

	_, _, err := d.Insert(ctx, "conta-1", week1)
	require.NoError(t, err)

	inserted, dups, err := d.Insert(ctx, "conta-1", week2)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted, "only the non-overlapping part is new")
	assert.Equal(t, 1, dups)
}

func TestInsertFuzzyFallback(t *testing.T) {
	ctx := context.Background()
	d := New(store.NewMemory())

	_, _, err := d.Insert(ctx, "conta-1", []models.Transaction{
		txn(1, -8990, "PIX ENVIADO POSTO SHELL CENTRO LTDA"),
	})
	require.NoError(t, err)

	// Same day, same amount, re-exported with the company suffix truncated:
	// different id, still a duplicate.
	inserted, dups, err := d.Insert(ctx, "conta-1", []models.Transaction{
		txn(1, -8990, "PIX ENVIADO POSTO SHELL CENTRO"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, 1, dups)

	// Same day and amount but a different counterparty stays.
	inserted, dups, err = d.Insert(ctx, "conta-1", []models.Transaction{
		txn(1, -8990, "PIX ENVIADO FARMACIA PAGUE MENOS"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 0, dups)
}

func TestInsertNeverDedupsAcrossAccounts(t *testing.T) {
	ctx := context.Background()
	d := New(store.NewMemory())

	batch := []models.Transaction{txn(1, 100000, "PIX RECEBIDO CLIENTE A")}
	_, _, err := d.Insert(ctx, "conta-1", batch)
	require.NoError(t, err)

	inserted, dups, err := d.Insert(ctx, "conta-2", batch)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted, "the same movement in another account is not a duplicate")
	assert.Equal(t, 0, dups)
}

func TestInsertConcurrentSameAccount(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	d := New(s)

	batch := []models.Transaction{
		txn(1, 100000, "PIX RECEBIDO CLIENTE A"),
		txn(2, -50000, "SAQUE BANCO 24H"),
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := d.Insert(ctx, "conta-1", batch)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.ListTransactions(ctx, "conta-1")
	require.NoError(t, err)
	assert.Len(t, got, 2, "concurrent overlapping imports must not double-insert")
}

// trackingStore counts id lookups to pin down which store path the
// duplicate check takes.
type trackingStore struct {
	*store.Memory
	hasCalls int
}

func (s *trackingStore) HasTransaction(ctx context.Context, account, id string) (bool, error) {
	s.hasCalls++
	return s.Memory.HasTransaction(ctx, account, id)
}

func TestInsertChecksIDsThroughStore(t *testing.T) {
	ctx := context.Background()
	ts := &trackingStore{Memory: store.NewMemory()}
	d := New(ts)

	batch := []models.Transaction{txn(1, 100000, "PIX RECEBIDO CLIENTE A")}
	_, _, err := d.Insert(ctx, "conta-1", batch)
	require.NoError(t, err)
	assert.Equal(t, 1, ts.hasCalls)

	_, dups, err := d.Insert(ctx, "conta-1", batch)
	require.NoError(t, err)
	assert.Equal(t, 1, dups)
	assert.Equal(t, 2, ts.hasCalls, "the primary id check goes through the store")
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		min  float64
		max  float64
	}{
		{"PIX ENVIADO POSTO SHELL", "pix enviado posto shell", 1, 1},
		{"PIX ENVIADO POSTO SHELL", "PIX ENVIADO POSTO IPIRANGA", 0.5, 0.7},
		{"TARIFA", "PIX RECEBIDO CLIENTE", 0, 0},
		{"", "", 1, 1},
	}
	for _, tt := range tests {
		got := similarity(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("similarity(%q, %q) = %.2f, want in [%.2f, %.2f]", tt.a, tt.b, got, tt.min, tt.max)
		}
	}
}

func TestInsertPropagatesStoreErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(store.NewMemory())
	_, _, err := d.Insert(ctx, "conta-1", []models.Transaction{txn(1, 1, "X")})
	require.Error(t, err)
	assert.Contains(t, fmt.Sprint(err), "conta-1")
}
