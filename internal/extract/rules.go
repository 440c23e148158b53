package extract

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Field keys, in output column order.
const (
	KeyID           = "Work ID"
	KeyAgent        = "Work Agent"
	KeyTitle        = "Work Title"
	KeyType         = "Work Type"
	KeyDescription  = "Work Description"
	KeyMeasurements = "Work Measurements"
	KeyDate         = "Work Date"
)

// Rule pairs a field key with the pattern that captures its value. The
// primary named group "v" holds the capture; "v2", when present, is read
// only if the primary branch of an alternation did not fire.
type Rule struct {
	Key     string
	Pattern *regexp.Regexp
}

// sep skips the separator run between a label and its value. RE2's \W is
// ASCII-only and would also swallow a leading accented letter of the value
// ("Técnica: Óleo" must not extract as "leo"), so a Unicode-aware class is
// spelled out instead.
const sep = `[^\p{L}\p{N}_]*`

// DefaultRules is the built-in rule table for the Museos Abiertos artwork
// sheets. Some labels appear twice because a batch of source documents
// carries mis-encoded accents ("TÌtulo:", "N∞ de Inventario:"); both
// spellings bind the same field. Rules are independent of each other, so
// table order only affects alert ordering.
func DefaultRules() []Rule {
	return []Rule{
		{KeyAgent, regexp.MustCompile(`Autor:` + sep + `(?P<v>.+)`)},
		{KeyTitle, regexp.MustCompile(`(?:Título:|TÌtulo:)` + sep + `(?P<v>.+)`)},
		{KeyID, regexp.MustCompile(`(?:N° de Inventario:|N∞ de Inventario:)` + sep + `(?P<v>.+)`)},
		{KeyType, regexp.MustCompile(`(?:Técnica:|TÈcnica:)` + sep + `(?P<v>.+)`)},
		{KeyDescription, regexp.MustCompile(`(?:Tema:|Tema / Descripción:)` + sep + `(?P<v>.+)`)},
		{KeyMeasurements, regexp.MustCompile(`Medidas*: ` + sep + `(?P<v>.+)`)},
		{KeyDate, regexp.MustCompile(`Año:` + sep + `(?P<v>.+)|Fecha:` + sep + `(?P<v2>.+)`)},
	}
}

type ruleSpec struct {
	Key     string `yaml:"key"`
	Pattern string `yaml:"pattern"`
}

// LoadRules reads a YAML rule table, replacing the built-in one. The file
// is a list of {key, pattern} entries; patterns use the same "v"/"v2"
// named capture groups as the built-in rules. Patterns are RE2, where \W
// is ASCII-only: to skip label/value separators without eating accented
// letters, use a Unicode class like [^\p{L}\p{N}_]* instead of \W*.
func LoadRules(path string) ([]Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var specs []ruleSpec
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}

	rules := make([]Rule, 0, len(specs))
	for i, s := range specs {
		if s.Key == "" {
			return nil, fmt.Errorf("rules file %s: entry %d has no key", path, i+1)
		}
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rules file %s: rule %q: %w", path, s.Key, err)
		}
		if re.SubexpIndex("v") < 0 {
			return nil, fmt.Errorf("rules file %s: rule %q has no capture group named %q", path, s.Key, "v")
		}
		rules = append(rules, Rule{Key: s.Key, Pattern: re})
	}
	return rules, nil
}
