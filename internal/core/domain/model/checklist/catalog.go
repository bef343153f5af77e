// Package checklist decides which tasks a new order starts with.
package checklist

import (
	"slices"
	"strings"
)

// Rule attaches Tasks to every client whose upper-cased name contains Match.
type Rule struct {
	Match string   `yaml:"match"`
	Tasks []string `yaml:"tasks"`
}

// Catalog is an ordered rule list with a fallback. The first matching rule wins.
type Catalog struct {
	Rules   []Rule   `yaml:"rules"`
	Default []string `yaml:"default"`
}

// DefaultCatalog is used when no catalog file is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		Rules: []Rule{
			{Match: "CLIENTE_A", Tasks: []string{"Tarea A1", "Tarea A2"}},
		},
		Default: []string{"Tarea 1 Genérica", "Tarea 2 Genérica"},
	}
}

// TasksFor returns the task descriptions for a client. The result is a copy.
func (c Catalog) TasksFor(client string) []string {
	upper := strings.ToUpper(client)
	for _, r := range c.Rules {
		if r.Match != "" && strings.Contains(upper, strings.ToUpper(r.Match)) {
			return slices.Clone(r.Tasks)
		}
	}
	return slices.Clone(c.Default)
}
