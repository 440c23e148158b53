package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	text := strings.Join([]string{
		"Autor: Jane Doe.",
		"Título: Paisaje con río",
		"N° de Inventario: MA-0042",
		"Técnica: Óleo sobre tela",
		"Tema: Paisaje",
		"Medidas: 50 x 70 cm",
		"Año: 1990",
	}, "\n")

	fields, missing := Extract(text, DefaultRules())

	if len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}

	expected := map[string]string{
		KeyAgent:        "Jane Doe.",
		KeyTitle:        "Paisaje con río",
		KeyID:           "MA-0042",
		KeyType:         "Óleo sobre tela",
		KeyDescription:  "Paisaje",
		KeyMeasurements: "50 x 70 cm",
		KeyDate:         "1990",
	}
	for key, want := range expected {
		if got := fields[key]; got != want {
			t.Errorf("field %q = %q, want %q", key, got, want)
		}
	}
}

func TestExtractSecondaryGroup(t *testing.T) {
	// The date rule binds "Año:" to the primary group and "Fecha:" to the
	// secondary one; either label must populate the same field.
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"primary label", "Año: 1990", "1990"},
		{"secondary label", "Fecha: 3 de Julio de 1947", "3 de Julio de 1947"},
		{"primary wins when both present", "Año: 1990\nFecha: 1991", "1990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, _ := Extract(tt.text, DefaultRules())
			if got := fields[KeyDate]; got != tt.expected {
				t.Errorf("date field = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractAccentedValueStart(t *testing.T) {
	// The separator run after a label must not swallow a leading accented
	// letter of the value; RE2's \W is ASCII-only and would reduce
	// "Óleo sobre tela" to "leo sobre tela".
	tests := []struct {
		name     string
		text     string
		key      string
		expected string
	}{
		{"technique", "Técnica: Óleo sobre tela", KeyType, "Óleo sobre tela"},
		{"agent", "Autor: Ángel García", KeyAgent, "Ángel García"},
		{"title", "Título: Única salida", KeyTitle, "Única salida"},
		{"date", "Año: Época colonial", KeyDate, "Época colonial"},
		{"date secondary", "Fecha: Último tercio del siglo XIX", KeyDate, "Último tercio del siglo XIX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, _ := Extract(tt.text, DefaultRules())
			if got := fields[tt.key]; got != tt.expected {
				t.Errorf("field %q = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestExtractMisencodedLabels(t *testing.T) {
	// A batch of source documents carries broken accents; both spellings
	// must bind.
	text := "TÌtulo: Retrato\nN∞ de Inventario: MA-7\nTÈcnica: Grabado"

	fields, _ := Extract(text, DefaultRules())

	if got := fields[KeyTitle]; got != "Retrato" {
		t.Errorf("title = %q, want %q", got, "Retrato")
	}
	if got := fields[KeyID]; got != "MA-7" {
		t.Errorf("id = %q, want %q", got, "MA-7")
	}
	if got := fields[KeyType]; got != "Grabado" {
		t.Errorf("type = %q, want %q", got, "Grabado")
	}
}

func TestExtractMissingFields(t *testing.T) {
	fields, missing := Extract("Autor: X", DefaultRules())

	if got := fields[KeyAgent]; got != "X" {
		t.Errorf("agent = %q, want %q", got, "X")
	}
	if _, ok := fields[KeyTitle]; ok {
		t.Error("title should be absent")
	}
	if len(missing) != len(DefaultRules())-1 {
		t.Errorf("expected %d missing fields, got %d: %v", len(DefaultRules())-1, len(missing), missing)
	}
}

func TestExtractStopsAtLineEnd(t *testing.T) {
	fields, _ := Extract("Autor: Jane Doe\nTítulo: Paisaje", DefaultRules())
	if got := fields[KeyAgent]; got != "Jane Doe" {
		t.Errorf("agent = %q, want %q (capture must not cross the newline)", got, "Jane Doe")
	}
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `- key: Work Agent
  pattern: 'Artist:\W*(?P<v>.+)'
- key: Work Date
  pattern: 'Year:\W*(?P<v>.+)|Date:\W*(?P<v2>.+)'
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}

	fields, _ := Extract("Artist: Jane\nDate: 1990", rules)
	if got := fields["Work Agent"]; got != "Jane" {
		t.Errorf("agent = %q, want %q", got, "Jane")
	}
	if got := fields["Work Date"]; got != "1990" {
		t.Errorf("date = %q, want %q", got, "1990")
	}
}

func TestLoadRulesErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"invalid pattern", "- key: Work Agent\n  pattern: '(?P<v>'\n"},
		{"no primary group", "- key: Work Agent\n  pattern: 'Artist: (.+)'\n"},
		{"missing key", "- pattern: '(?P<v>.+)'\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadRules(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
