package checklist_test

import (
	"testing"

	"tracking/internal/core/domain/model/checklist"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_TasksFor(t *testing.T) {
	c := checklist.DefaultCatalog()

	tests := []struct {
		name   string
		client string
		want   []string
	}{
		{"matching rule", "Distribuidora cliente_a Norte", []string{"Tarea A1", "Tarea A2"}},
		{"no rule", "Comercial del Sur", []string{"Tarea 1 Genérica", "Tarea 2 Genérica"}},
		{"blank client", "", []string{"Tarea 1 Genérica", "Tarea 2 Genérica"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.TasksFor(tt.client))
		})
	}
}

func TestCatalog_FirstRuleWins(t *testing.T) {
	c := checklist.Catalog{
		Rules: []checklist.Rule{
			{Match: "OXXO", Tasks: []string{"Cita"}},
			{Match: "OXXO NORTE", Tasks: []string{"Nunca"}},
		},
	}

	assert.Equal(t, []string{"Cita"}, c.TasksFor("Oxxo Norte"))
	assert.Empty(t, c.TasksFor("Walmart"))
}

func TestCatalog_TasksForReturnsCopy(t *testing.T) {
	c := checklist.DefaultCatalog()

	got := c.TasksFor("x")
	got[0] = "changed"

	assert.Equal(t, "Tarea 1 Genérica", c.TasksFor("x")[0])
}
