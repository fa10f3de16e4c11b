package models

import (
	"fmt"
	"strings"
)

// Money is a fixed-point currency value in centavos. Negative values are
// debits (saída), positive values credits (entrada). Arithmetic on Money
// never goes through floating point, so repeated imports cannot drift.
type Money int64

// ParseMoney converts a Brazilian-formatted amount string into centavos.
// Accepted shapes: "1.234,56", "234,56", "R$ 1.234,56", "-R$ 50,00",
// "1.500,00-" (Itaú trailing-minus debit). Currency symbol and spaces are
// stripped before parsing.
func ParseMoney(s string) (Money, error) {
	orig := s
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	if strings.HasSuffix(s, "-") {
		negative = true
		s = s[:len(s)-1]
	}

	// Brazilian convention: dot groups thousands, comma separates centavos.
	s = strings.ReplaceAll(s, ".", "")
	intPart := s
	centPart := "00"
	if idx := strings.LastIndex(s, ","); idx >= 0 {
		intPart = s[:idx]
		centPart = s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(centPart) != 2 {
		return 0, fmt.Errorf("invalid amount %q: expected two decimal digits", orig)
	}

	var v int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", orig)
		}
		v = v*10 + int64(r-'0')
		if v > 1<<53 {
			return 0, fmt.Errorf("amount %q out of range", orig)
		}
	}
	for _, r := range centPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", orig)
		}
		v = v*10 + int64(r-'0')
	}

	if negative {
		v = -v
	}
	return Money(v), nil
}

// Abs returns the magnitude of the value.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// String renders the value back in the Brazilian convention, e.g. "-1.234,56".
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := v % 100
	whole := v / 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s%s,%02d", sign, b.String(), cents)
}
