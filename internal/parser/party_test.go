package parser

import (
	"testing"
)

func TestSplitNameDocumentCPF(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantDoc  string
	}{
		{"JOÃO SILVA 123.456.789-00", "JOÃO SILVA", "123.456.789-00"},
		{"123.456.789-00 MARIA DA CONCEIÇÃO", "MARIA DA CONCEIÇÃO", "123.456.789-00"},
		{"EMPRESA COM CPF 111.222.333-44 E OUTRAS INFO", "EMPRESA COM CPF E OUTRAS INFO", "111.222.333-44"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, doc := SplitNameDocument(tt.input)
			if name != tt.wantName {
				t.Errorf("name: got %q, want %q", name, tt.wantName)
			}
			if doc != tt.wantDoc {
				t.Errorf("document: got %q, want %q", doc, tt.wantDoc)
			}
		})
	}
}

func TestSplitNameDocumentCNPJ(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantDoc  string
	}{
		{"EMPRESA XYZ LTDA 12.345.678/0001-23", "EMPRESA XYZ LTDA", "12.345.678/0001-23"},
		{"MARIA EMPRESA S.A. 98.765.432/0001-10", "MARIA EMPRESA SA", "98.765.432/0001-10"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, doc := SplitNameDocument(tt.input)
			if name != tt.wantName {
				t.Errorf("name: got %q, want %q", name, tt.wantName)
			}
			if doc != tt.wantDoc {
				t.Errorf("document: got %q, want %q", doc, tt.wantDoc)
			}
		})
	}
}

func TestSplitNameDocumentNone(t *testing.T) {
	name, doc := SplitNameDocument("APENAS NOME SEM DOCUMENTO")
	if name != "APENAS NOME SEM DOCUMENTO" {
		t.Errorf("name: got %q", name)
	}
	if doc != "" {
		t.Errorf("document: got %q, want empty", doc)
	}
}

// CPF wins over CNPJ when both shapes could be read from the fragment.
func TestSplitNameDocumentCPFPriority(t *testing.T) {
	_, doc := SplitNameDocument("FULANO 123.456.789-00 ACME 12.345.678/0001-23")
	if doc != "123.456.789-00" {
		t.Errorf("document: got %q, want CPF first", doc)
	}
}

// Accented letters and case must survive name cleaning.
func TestSplitNameDocumentPreservesUnicode(t *testing.T) {
	name, _ := SplitNameDocument("José Conceição Ávila 123.456.789-00")
	if name != "José Conceição Ávila" {
		t.Errorf("got %q, accented letters must be preserved", name)
	}
}

func TestSplitNameDocumentIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		name, doc := SplitNameDocument("JOÃO SILVA 123.456.789-00")
		if name != "JOÃO SILVA" || doc != "123.456.789-00" {
			t.Fatalf("call %d diverged: %q %q", i, name, doc)
		}
	}
}
