// Package vocab keeps controlled vocabularies of the checklist and
// recodes raw spreadsheet values into vocabulary-qualified codes like
// `cbd_2014_pathway:contaminant_nursery`.
//
// Vocabularies are data, not code: the defaults are embedded from
// vocabularies.yaml and can be replaced by a file with the same layout.
package vocab

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed vocabularies.yaml
var vocabulariesYAML []byte

// Vocabulary is a closed map from raw values to codes of a named
// vocabulary.
type Vocabulary struct {
	// Name is a prefix of qualified codes.
	Name string `yaml:"name"`

	// Codes maps raw values to codes.
	Codes map[string]string `yaml:"codes"`

	// Precedence orders codes from the lowest to the highest rank.
	// Only used by staged vocabularies.
	Precedence []string `yaml:"precedence,omitempty"`
}

// Vocabularies contains all vocabularies of the checklist.
type Vocabularies struct {
	Languages             map[string]string `yaml:"languages"`
	Pathways              Vocabulary        `yaml:"pathways"`
	DegreeOfEstablishment Vocabulary        `yaml:"degree_of_establishment"`

	rank map[string]int
}

var fold = cases.Fold()

// New returns built-in vocabularies.
func New() (*Vocabularies, error) {
	return Load(vocabulariesYAML)
}

// Load parses vocabularies from YAML data and checks their consistency.
func Load(data []byte) (*Vocabularies, error) {
	var res Vocabularies
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, LoadError(err)
	}
	if err := res.prepare(); err != nil {
		return nil, LoadError(err)
	}
	return &res, nil
}

func (v *Vocabularies) prepare() error {
	if len(v.Languages) == 0 {
		return fmt.Errorf("languages vocabulary is empty")
	}
	langs := make(map[string]string, len(v.Languages))
	for k, code := range v.Languages {
		if _, err := language.ParseBase(code); err != nil {
			return fmt.Errorf("language %q has invalid code %q: %w", k, code, err)
		}
		langs[key(k)] = code
	}
	v.Languages = langs

	for _, voc := range []*Vocabulary{&v.Pathways, &v.DegreeOfEstablishment} {
		if voc.Name == "" || len(voc.Codes) == 0 {
			return fmt.Errorf("vocabulary %q is incomplete", voc.Name)
		}
		codes := make(map[string]string, len(voc.Codes))
		for k, code := range voc.Codes {
			codes[key(k)] = code
		}
		voc.Codes = codes
	}

	v.rank = make(map[string]int, len(v.DegreeOfEstablishment.Precedence))
	for i, stage := range v.DegreeOfEstablishment.Precedence {
		stage = key(stage)
		if _, ok := v.DegreeOfEstablishment.Codes[stage]; !ok {
			return fmt.Errorf("stage %q has no code", stage)
		}
		v.rank[stage] = i
	}
	if len(v.rank) == 0 {
		return fmt.Errorf("degree of establishment precedence is empty")
	}
	return nil
}

// Language converts a language name to a two-letter code.
func (v *Vocabularies) Language(name string) (string, error) {
	if code, ok := v.Languages[key(name)]; ok {
		return code, nil
	}
	return "", VocabularyError("language", name)
}

// Pathway converts a pathway label to a qualified CBD code.
func (v *Vocabularies) Pathway(label string) (string, error) {
	return v.Pathways.qualify("pathway", label)
}

// Establishment converts a raw degree of establishment value to a
// qualified Blackburn code. Values with several stages collapse to the
// most established one.
func (v *Vocabularies) Establishment(raw string) (string, error) {
	stage, err := v.MostAdvancedStage(raw)
	if err != nil {
		return "", err
	}
	return v.DegreeOfEstablishment.qualify("degree of establishment", stage)
}

// MostAdvancedStage picks the highest stage from a value like "C1 - C3"
// or "C3, D1, D2".
func (v *Vocabularies) MostAdvancedStage(raw string) (string, error) {
	stages := strings.FieldsFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	best, bestRank := "", -1
	for _, s := range stages {
		rank, ok := v.rank[key(s)]
		if !ok {
			return "", VocabularyError("degree of establishment", raw)
		}
		if rank > bestRank {
			best, bestRank = s, rank
		}
	}
	if bestRank < 0 {
		return "", VocabularyError("degree of establishment", raw)
	}
	return strings.ToUpper(best), nil
}

func (voc Vocabulary) qualify(kind, val string) (string, error) {
	code, ok := voc.Codes[key(val)]
	if !ok {
		return "", VocabularyError(kind, val)
	}
	return voc.Name + ":" + code, nil
}

// key normalizes a raw value for lookups.
func key(s string) string {
	return fold.String(strings.TrimSpace(s))
}
