package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"preptogether/internal/domain"
)

//go:embed professions.yaml
var professionsYAML []byte

type entry struct {
	Name         domain.Profession `yaml:"name"`
	Technologies []string          `yaml:"technologies"`
}

type document struct {
	Professions []entry `yaml:"professions"`
}

var entries = mustParse(professionsYAML)

func mustParse(b []byte) []entry {
	out, err := parse(b)
	if err != nil {
		panic(fmt.Errorf("catalog: %w", err))
	}
	return out
}

func parse(b []byte) ([]entry, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Professions) == 0 {
		return nil, fmt.Errorf("no professions defined")
	}
	seen := make(map[domain.Profession]bool, len(doc.Professions))
	for _, e := range doc.Professions {
		if e.Name == "" {
			return nil, fmt.Errorf("profession without a name")
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate profession %q", e.Name)
		}
		if len(e.Technologies) == 0 {
			return nil, fmt.Errorf("profession %q lists no technologies", e.Name)
		}
		seen[e.Name] = true
	}
	return doc.Professions, nil
}

// Professions returns the profession names in catalog order.
func Professions() []domain.Profession {
	out := make([]domain.Profession, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

// Has reports whether p is a catalog profession.
func Has(p domain.Profession) bool {
	_, ok := lookup(p)
	return ok
}

// Technologies returns the ordered technologies offered for p.
func Technologies(p domain.Profession) ([]string, bool) {
	e, ok := lookup(p)
	if !ok {
		return nil, false
	}
	return slices.Clone(e.Technologies), true
}

// HasTechnology reports whether tech is offered for p.
func HasTechnology(p domain.Profession, tech string) bool {
	e, ok := lookup(p)
	return ok && slices.Contains(e.Technologies, tech)
}

func lookup(p domain.Profession) (entry, bool) {
	for _, e := range entries {
		if e.Name == p {
			return e, true
		}
	}
	return entry{}, false
}
