package models

import (
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input    string
		expected Money
		wantErr  bool
	}{
		{"234,56", 23456, false},
		{"1.234,56", 123456, false},
		{"R$ 1.234,56", 123456, false},
		{"-R$ 50,00", -5000, false},
		{"1.500,00-", -150000, false},
		{"-185,40", -18540, false},
		{"0,00", 0, false},
		{"1.234.567,89", 123456789, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12,3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		input    Money
		expected string
	}{
		{23456, "234,56"},
		{123456, "1.234,56"},
		{-5000, "-50,00"},
		{0, "0,00"},
		{123456789, "1.234.567,89"},
		{100, "1,00"},
		{-7, "-0,07"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseMoneyRoundTrip(t *testing.T) {
	for _, v := range []Money{0, 1, -1, 99, 100, -150000, 123456789} {
		got, err := ParseMoney(v.String())
		if err != nil {
			t.Fatalf("%d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}
