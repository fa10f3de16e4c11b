package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTypeFollowsSign(t *testing.T) {
	if (Transaction{Amount: 100}).Type() != TypeEntrada {
		t.Error("positive amount must be entrada")
	}
	if (Transaction{Amount: -100}).Type() != TypeSaida {
		t.Error("negative amount must be saida")
	}
	if (Transaction{Amount: 0}).Type() != TypeEntrada {
		t.Error("zero amount defaults to entrada")
	}
}

func TestDeriveIDStability(t *testing.T) {
	date := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	a := DeriveID(date, -150000, "SAQUE BANCO 24H", FormatItau)
	b := DeriveID(date, -150000, "saque   banco 24h", FormatItau)
	if a != b {
		t.Error("layout-neutral description changes must not change the id")
	}

	c := DeriveID(date, -150000, "SAQUE BANCO 24H", FormatBradesco)
	if a == c {
		t.Error("different source format must change the id")
	}

	d := DeriveID(date.AddDate(0, 0, 1), -150000, "SAQUE BANCO 24H", FormatItau)
	if a == d {
		t.Error("different date must change the id")
	}
}

func TestBalanceJSONDistinguishesZeroFromAbsent(t *testing.T) {
	withZero, err := json.Marshal(Transaction{Balance: 0, HasBalance: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(withZero), `"tem_saldo":true`) {
		t.Errorf("a stated 0,00 balance must be marked present: %s", withZero)
	}

	without, err := json.Marshal(Transaction{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(without), `"tem_saldo":false`) {
		t.Errorf("a missing balance column must be marked absent: %s", without)
	}
}

func TestSummarize(t *testing.T) {
	d1 := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)
	txns := []Transaction{
		{Date: d2, Amount: 250000},
		{Date: d1, Amount: -150000},
		{Date: d1, Amount: -4540},
	}

	s := Summarize(txns, 1)
	if s.Total != 3 || s.Entradas != 1 || s.Saidas != 2 {
		t.Errorf("counts: %+v", s)
	}
	if s.SumEntradas != 250000 {
		t.Errorf("sum entradas: got %d", s.SumEntradas)
	}
	if s.SumSaidas != 154540 {
		t.Errorf("sum saidas: got %d (stored as magnitude)", s.SumSaidas)
	}
	if !s.PeriodStart.Equal(d1) || !s.PeriodEnd.Equal(d2) {
		t.Errorf("period: %v - %v", s.PeriodStart, s.PeriodEnd)
	}
	if s.Warnings != 1 {
		t.Errorf("warnings: got %d", s.Warnings)
	}
}
