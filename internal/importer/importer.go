// Package importer runs the full statement import: extraction, per-account
// deduplication, persistence and the audit record of the run.
package importer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finassist/extrato/internal/dedup"
	"github.com/finassist/extrato/internal/models"
	"github.com/finassist/extrato/internal/parser"
	"github.com/finassist/extrato/internal/store"
)

// Importer ties the extraction pipeline to storage. Safe for concurrent use;
// imports into the same account are serialized by the deduplicator.
type Importer struct {
	store store.Store
	dedup *dedup.Deduplicator
	log   zerolog.Logger
}

// Result reports one completed import run.
type Result struct {
	Record    store.ImportRecord     `json:"registro"`
	Statement *models.StatementInfo  `json:"extrato"`
	Summary   models.Summary         `json:"resumo"`
}

func New(s store.Store, log zerolog.Logger) *Importer {
	return &Importer{store: s, dedup: dedup.New(s), log: log}
}

// Import extracts the statement from the recovered page texts and persists
// the transactions that are new to the account. account falls back to the
// conta parsed from the statement header, then to "default". fileName is
// recorded for audit only.
func (im *Importer) Import(ctx context.Context, account, fileName string, pages []string, opts parser.Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = &im.log
	}

	info, err := parser.Run(pages, opts)
	if err != nil {
		return nil, err
	}

	if account == "" {
		account = info.Account
	}
	if account == "" {
		account = "default"
	}

	inserted, duplicates, err := im.dedup.Insert(ctx, account, info.Transactions)
	if err != nil {
		return nil, err
	}

	rec := store.ImportRecord{
		ID:         uuid.New().String(),
		Account:    account,
		Format:     info.Format,
		FileName:   fileName,
		Imported:   inserted,
		Duplicates: duplicates,
		Skipped:    info.SkippedLines,
		Warnings:   info.Warnings,
		CreatedAt:  time.Now().UTC(),
	}
	if err := im.store.RecordImport(ctx, rec); err != nil {
		return nil, err
	}

	im.log.Info().
		Str("import_id", rec.ID).
		Str("conta", account).
		Str("banco", string(info.Format)).
		Int("importadas", inserted).
		Int("duplicadas", duplicates).
		Int("puladas", info.SkippedLines).
		Int("avisos", len(info.Warnings)).
		Msg("import finished")

	summary := models.Summarize(info.Transactions, len(info.Warnings))
	summary.Duplicates = duplicates

	return &Result{
		Record:    rec,
		Statement: info,
		Summary:   summary,
	}, nil
}
