// Package checklistfile loads the per-client checklist catalog from YAML.
//
//	rules:
//	  - match: CLIENTE_A
//	    tasks: [Tarea A1, Tarea A2]
//	default: [Tarea 1 Genérica, Tarea 2 Genérica]
package checklistfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tracking/internal/core/domain/model/checklist"
	"tracking/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Load reads the catalog at path. An empty path yields the built-in catalog.
func Load(path string) (checklist.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return checklist.DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return checklist.Catalog{}, fmt.Errorf("read checklist catalog: %w", err)
	}

	return Decode(bytes.NewReader(raw))
}

// Decode parses a catalog. Unknown keys are rejected; a missing default list
// falls back to the built-in one.
func Decode(r io.Reader) (checklist.Catalog, error) {
	var catalog checklist.Catalog

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		return checklist.Catalog{}, fmt.Errorf("parse checklist catalog: %w", err)
	}

	for i, rule := range catalog.Rules {
		if strings.TrimSpace(rule.Match) == "" {
			return checklist.Catalog{}, errs.NewValueIsRequiredError(fmt.Sprintf("rules[%d].match", i))
		}
	}

	if len(catalog.Default) == 0 {
		catalog.Default = checklist.DefaultCatalog().Default
	}

	return catalog, nil
}
