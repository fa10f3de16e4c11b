// Package category assigns spending categories to transaction descriptions
// by keyword lookup. The longest matching keyword wins, so "posto shell"
// beats "br" on a line mentioning both.
package category

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Table maps category names to their keyword lists. Matching is
// case-insensitive and substring-based over the normalized description.
type Table struct {
	keywords map[string][]string
}

// New builds a table from category → keywords. Keywords are lowercased on
// the way in; empty ones are dropped.
func New(keywords map[string][]string) *Table {
	t := &Table{keywords: make(map[string][]string, len(keywords))}
	for cat, words := range keywords {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			t.keywords[cat] = append(t.keywords[cat], w)
		}
	}
	return t
}

// LoadFile reads a category table from a JSON file shaped as
// {"categoria": ["palavra", ...], ...}.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading category table: %w", err)
	}
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing category table %s: %w", path, err)
	}
	return New(raw), nil
}

// Categorize returns the category of the longest keyword found in the
// description, or "" when nothing matches. Ties on length break by keyword
// text, then category name, so the result never depends on map order.
func (t *Table) Categorize(description string) string {
	desc := strings.ToLower(description)
	bestCat, bestWord := "", ""
	for cat, words := range t.keywords {
		for _, w := range words {
			if !strings.Contains(desc, w) {
				continue
			}
			if len(w) > len(bestWord) ||
				(len(w) == len(bestWord) && (w < bestWord || (w == bestWord && cat < bestCat))) {
				bestCat, bestWord = cat, w
			}
		}
	}
	return bestCat
}

// Add appends a keyword to a category at runtime.
func (t *Table) Add(cat, keyword string) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return
	}
	t.keywords[cat] = append(t.keywords[cat], keyword)
}

// Categories lists the known category names.
func (t *Table) Categories() []string {
	out := make([]string, 0, len(t.keywords))
	for cat := range t.keywords {
		out = append(out, cat)
	}
	return out
}

// Default returns the built-in Brazilian keyword table. Establishment and
// brand names cover what commonly shows up in statement descriptions.
func Default() *Table {
	return New(map[string][]string{
		"alimentacao": {
			"restaurante", "lanchonete", "padaria", "açougue", "acougue", "hortifruti",
			"mercado", "supermercado", "mercearia", "sacolão", "sacolao",
			"atacadão", "atacadao", "assaí", "assai", "carrefour", "pão de açúcar",
			"ifood", "uber eats", "rappi", "zé delivery", "ze delivery", "delivery",
			"pizzaria", "hamburgueria", "churrascaria", "refeição", "refeicao",
		},
		"combustivel": {
			"gasolina", "combustível", "combustivel", "etanol", "diesel", "gnv",
			"posto", "abastecimento", "shell", "petrobras", "ipiranga",
		},
		"transporte": {
			"uber", "99app", "99 pop", "taxi", "táxi", "metrô", "metro", "ônibus", "onibus",
			"estacionamento", "pedágio", "pedagio", "passagem",
		},
		"moradia": {
			"aluguel", "condomínio", "condominio", "iptu", "energia", "luz",
			"água", "agua", "saneamento", "gás", "gas", "internet", "telefone",
		},
		"saude": {
			"farmácia", "farmacia", "drogaria", "remédio", "remedio", "medicamento",
			"médico", "medico", "clínica", "clinica", "laboratório", "laboratorio",
			"hospital", "dentista", "plano de saúde", "plano de saude",
		},
		"lazer": {
			"cinema", "teatro", "show", "ingresso", "netflix", "spotify",
			"bar", "balada", "viagem", "hotel", "pousada",
		},
		"educacao": {
			"escola", "faculdade", "universidade", "curso", "mensalidade escolar",
			"livraria", "apostila", "matrícula", "matricula",
		},
		"vestuario": {
			"roupa", "calçado", "calcado", "sapato", "tênis", "tenis",
			"renner", "riachuelo", "c&a", "zara",
		},
		"beleza": {
			"salão", "salao", "cabeleireiro", "barbearia", "manicure", "estética", "estetica",
		},
		"tecnologia": {
			"celular", "notebook", "informática", "informatica", "eletrônico", "eletronico",
			"magazine luiza", "magalu", "casas bahia", "mercado livre", "amazon",
		},
		"tarifas": {
			"tarifa", "mensalidade", "anuidade", "iof", "juros", "encargo", "cesta de serviços",
			"cesta de servicos", "manutenção de conta", "manutencao de conta",
		},
	})
}
