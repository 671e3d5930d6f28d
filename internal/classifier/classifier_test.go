package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name        string
		description string
		want        string
		wantOK      bool
	}{
		{name: "empty", description: "", wantOK: false},
		{name: "blank", description: "   ", wantOK: false},
		{name: "no match", description: "presente de aniversário", wantOK: false},
		{name: "transport", description: "Uber centro", want: "Transporte", wantOK: true},
		{name: "upper case", description: "UBER CENTRO", want: "Transporte", wantOK: true},
		{name: "substring counts", description: "ubered home", want: "Transporte", wantOK: true},
		{name: "accent in input", description: "Ônibus para o trabalho", want: "Transporte", wantOK: true},
		{name: "accent folded", description: "onibus", want: "Transporte", wantOK: true},
		{name: "income", description: "Salário", want: "Renda", wantOK: true},
		{name: "income without accent", description: "salario de outubro", want: "Renda", wantOK: true},
		{name: "multi word keyword", description: "mensalidade plano de saude", want: "Saúde", wantOK: true},
		{name: "food", description: "Pedido iFood", want: "Alimentação", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.description)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifier_FirstCategoryWins(t *testing.T) {
	c := NewDefault()

	// "mercado" is Alimentação, "uber" is Transporte; Alimentação comes first in the table.
	got, ok := c.Classify("uber até o mercado")
	assert.True(t, ok)
	assert.Equal(t, "Alimentação", got)

	// Custom table order decides, not keyword position in the text.
	custom := New([]Rule{
		{Category: "B", Keywords: []string{"beta"}},
		{Category: "A", Keywords: []string{"alpha"}},
	})
	got, ok = custom.Classify("alpha beta")
	assert.True(t, ok)
	assert.Equal(t, "B", got)
}

func TestClassifier_Deterministic(t *testing.T) {
	c := NewDefault()
	first, ok1 := c.Classify("Netflix e pipoca")
	second, ok2 := c.Classify("Netflix e pipoca")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, "Lazer", first)
}

func TestClassifier_IgnoresBlankKeywords(t *testing.T) {
	c := New([]Rule{{Category: "X", Keywords: []string{"", "  "}}})
	_, ok := c.Classify("anything")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "combustivel", Normalize("Combustível"))
	assert.Equal(t, "metro", Normalize(" METRÔ "))
	assert.Equal(t, "", Normalize(""))
}
