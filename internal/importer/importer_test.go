package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finassist/extrato/internal/models"
	"github.com/finassist/extrato/internal/parser"
	"github.com/finassist/extrato/internal/store"
)

const itauStatement = `ITAÚ UNIBANCO
www.itau.com.br
AGÊNCIA 1234 CONTA 56789-0
Data Histórico Valor Saldo
01/12/2024 PIX RECEBIDO CLIENTE A 1.000,00 6.000,00
02/12/2024 SAQUE BANCO 24H 500,00- 5.500,00`

func TestImport(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	im := New(s, zerolog.Nop())

	res, err := im.Import(ctx, "", "extrato_dez.pdf", []string{itauStatement}, parser.Options{})
	require.NoError(t, err)

	assert.Equal(t, models.FormatItau, res.Record.Format)
	assert.Equal(t, "56789-0", res.Record.Account, "account falls back to the statement header")
	assert.Equal(t, 2, res.Record.Imported)
	assert.Equal(t, 0, res.Record.Duplicates)
	assert.NotEmpty(t, res.Record.ID)
	assert.Equal(t, "extrato_dez.pdf", res.Record.FileName)
	assert.Equal(t, models.Money(100000), res.Summary.SumEntradas)
	assert.Equal(t, models.Money(50000), res.Summary.SumSaidas)

	stored, err := s.ListTransactions(ctx, "56789-0")
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	recs, err := s.ListImports(ctx, "56789-0")
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestImportTwiceRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	im := New(s, zerolog.Nop())

	_, err := im.Import(ctx, "conta-1", "a.pdf", []string{itauStatement}, parser.Options{})
	require.NoError(t, err)

	res, err := im.Import(ctx, "conta-1", "a.pdf", []string{itauStatement}, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Record.Imported)
	assert.Equal(t, 2, res.Record.Duplicates)

	stored, err := s.ListTransactions(ctx, "conta-1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestImportUnrecognizedFormatWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	im := New(s, zerolog.Nop())

	_, err := im.Import(ctx, "conta-1", "x.pdf", []string{"nada reconhecível"}, parser.Options{})
	require.True(t, errors.Is(err, parser.ErrFormatUnrecognized))

	stored, err := s.ListTransactions(ctx, "conta-1")
	require.NoError(t, err)
	assert.Empty(t, stored)

	recs, err := s.ListImports(ctx, "conta-1")
	require.NoError(t, err)
	assert.Empty(t, recs, "a failed run leaves no audit entry")
}
