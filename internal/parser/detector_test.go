package parser

import (
	"errors"
	"testing"

	"github.com/finassist/extrato/internal/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		expected models.BankFormat
	}{
		{
			"itau",
			[]string{"ITAÚ UNIBANCO S.A.\nwww.itau.com.br\nAGÊNCIA 1234 CONTA 56789-0"},
			models.FormatItau,
		},
		{
			"banco do brasil",
			[]string{"BANCO DO BRASIL\nwww.bb.com.br\nExtrato de conta corrente"},
			models.FormatBancoDoBrasil,
		},
		{
			"bradesco",
			[]string{"Banco Bradesco S.A.\nwww.bradesco.com.br"},
			models.FormatBradesco,
		},
		{
			"santander",
			[]string{"BANCO SANTANDER (BRASIL) S.A.\nwww.santander.com.br"},
			models.FormatSantander,
		},
		{
			"nubank",
			[]string{"NUBANK\nNu Pagamentos S.A.\nwww.nubank.com.br\nExtrato exportado"},
			models.FormatNubank,
		},
		{
			"caixa",
			[]string{"CAIXA ECONÔMICA FEDERAL\nwww.caixa.gov.br"},
			models.FormatCaixaEconomica,
		},
		{
			"inter",
			[]string{"BANCO INTER S.A.\nwww.bancointer.com.br"},
			models.FormatBancoInter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.pages)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectUnrecognized(t *testing.T) {
	_, err := Detect([]string{"documento qualquer sem assinatura de nenhuma instituição"})
	if !errors.Is(err, ErrFormatUnrecognized) {
		t.Fatalf("expected ErrFormatUnrecognized, got %v", err)
	}
}

// The highest-scoring format wins even when a weak signature of another
// format also appears in the text.
func TestDetectScoring(t *testing.T) {
	pages := []string{"BANCO DO BRASIL\nwww.bb.com.br\nreferência 341"}
	got, err := Detect(pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != models.FormatBancoDoBrasil {
		t.Errorf("got %q, want banco_do_brasil on score", got)
	}
}
