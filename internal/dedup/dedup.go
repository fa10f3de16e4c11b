// Package dedup filters transactions that were already imported for an
// account. Content-derived ids catch byte-identical re-imports; a fuzzy
// fallback catches the same transaction re-exported with cosmetic
// description differences.
package dedup

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/finassist/extrato/internal/models"
	"github.com/finassist/extrato/internal/store"
)

// similarityThreshold is the minimum token overlap for the fuzzy fallback
// to call two same-day, same-amount transactions the same.
const similarityThreshold = 0.8

// Deduplicator serializes import runs per account: two concurrent imports
// of overlapping statements into the same account never double-insert.
// Different accounts proceed in parallel.
type Deduplicator struct {
	store store.Store

	mu       sync.Mutex
	accounts map[string]*sync.Mutex
}

func New(s store.Store) *Deduplicator {
	return &Deduplicator{store: s, accounts: make(map[string]*sync.Mutex)}
}

func (d *Deduplicator) accountLock(account string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.accounts[account]
	if !ok {
		l = &sync.Mutex{}
		d.accounts[account] = l
	}
	return l
}

// Insert stores the transactions that are not already present in the
// account and reports how many were rejected as duplicates. The check and
// the insert run under the account's lock.
func (d *Deduplicator) Insert(ctx context.Context, account string, txns []models.Transaction) (inserted, duplicates int, err error) {
	lock := d.accountLock(account)
	lock.Lock()
	defer lock.Unlock()

	existing, err := d.store.ListTransactions(ctx, account)
	if err != nil {
		return 0, 0, fmt.Errorf("loading account %q: %w", account, err)
	}

	byKey := make(map[dayAmount][]string)
	for _, t := range existing {
		k := keyOf(t)
		byKey[k] = append(byKey[k], t.Description)
	}

	batch := make(map[string]struct{}, len(txns))
	fresh := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if _, dup := batch[t.ID]; dup {
			duplicates++
			continue
		}
		stored, err := d.store.HasTransaction(ctx, account, t.ID)
		if err != nil {
			return 0, 0, fmt.Errorf("checking account %q: %w", account, err)
		}
		if stored {
			duplicates++
			continue
		}
		if isFuzzyDuplicate(t, byKey[keyOf(t)]) {
			duplicates++
			continue
		}
		fresh = append(fresh, t)
		batch[t.ID] = struct{}{}
		k := keyOf(t)
		byKey[k] = append(byKey[k], t.Description)
	}

	if len(fresh) > 0 {
		if err := d.store.InsertTransactions(ctx, account, fresh); err != nil {
			return 0, duplicates, fmt.Errorf("inserting into account %q: %w", account, err)
		}
	}
	return len(fresh), duplicates, nil
}

// dayAmount narrows fuzzy comparison to same-day, same-signed-amount pairs.
type dayAmount struct {
	day    string
	amount models.Money
}

func keyOf(t models.Transaction) dayAmount {
	return dayAmount{day: t.Date.Format("2006-01-02"), amount: t.Amount}
}

func isFuzzyDuplicate(t models.Transaction, candidates []string) bool {
	for _, desc := range candidates {
		if similarity(t.Description, desc) >= similarityThreshold {
			return true
		}
	}
	return false
}

// similarity is the Jaccard index over normalized description tokens.
func similarity(a, b string) float64 {
	ta := tokens(a)
	tb := tokens(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 1
	}
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	common := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			common++
		}
	}
	union := len(ta) + len(tb) - common
	return float64(common) / float64(union)
}

func tokens(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, f := range strings.Fields(models.NormalizeDescription(s)) {
		out[f] = struct{}{}
	}
	return out
}
