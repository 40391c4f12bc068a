package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reductionDomain = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33}

func TestArchetypeCoversDomain(t *testing.T) {
	for _, n := range reductionDomain {
		entry := Archetype(n)
		assert.NotEmpty(t, entry.Title, "number %d", n)
		assert.NotEmpty(t, entry.Description, "number %d", n)
		assert.NotEmpty(t, entry.CorrectionTheme, "number %d", n)
		assert.NotEqual(t, undefinedArchetype.Title, entry.Title, "number %d", n)
	}
}

func TestArchetypeFallback(t *testing.T) {
	for _, n := range []int{0, 10, 12, 44, -3} {
		entry := Archetype(n)
		assert.Equal(t, undefinedArchetype, entry, "number %d", n)
	}
}

func TestArchetypeSpotChecks(t *testing.T) {
	assert.Equal(t, "Canal de Voluntad y Autoafirmación", Archetype(1).Title)
	assert.Equal(t, "Canal Maestro de Intuición y Revelación", Archetype(11).Title)
	assert.Equal(t, "Canal Maestro de Amor y Sanación", Archetype(33).Title)
}

func TestTikkunCoversDomain(t *testing.T) {
	for _, n := range reductionDomain {
		tpl := Tikkun(n, n%9+1)
		assert.NotEmpty(t, tpl.CentralTheme, "number %d", n)
		assert.NotEmpty(t, tpl.Patterns, "number %d", n)
		assert.NotEmpty(t, tpl.CorrectionPhrases, "number %d", n)
		assert.NotEmpty(t, tpl.Keys, "number %d", n)
		assert.NotEmpty(t, tpl.Questions, "number %d", n)
	}
}

func TestTikkunFallsBackToSimpleDigit(t *testing.T) {
	// 10 has no template of its own; the simple digit resolves.
	tpl := Tikkun(10, 1)
	want := Tikkun(1, 1)
	assert.Equal(t, want, tpl)
}

func TestTikkunSynthesizedFallback(t *testing.T) {
	// Neither number has a template: the synthesized minimal template
	// carries only the archetype's correction theme as central theme.
	tpl := Tikkun(44, 44)
	require.Len(t, tpl.CentralTheme, 1)
	assert.Equal(t, Archetype(44).CorrectionTheme, tpl.CentralTheme[0])
	assert.Empty(t, tpl.Patterns)
	assert.Empty(t, tpl.CorrectionPhrases)
	assert.Empty(t, tpl.Keys)
	assert.Empty(t, tpl.Questions)
}

func TestEnergyDescription(t *testing.T) {
	assert.Equal(t, "impulso, identidad, coraje para iniciar", EnergyDescription(1))
	assert.Equal(t, "compasión, cierre de ciclos y servicio", EnergyDescription(9))
	assert.Equal(t, "energía no definida", EnergyDescription(0))
	assert.Equal(t, "energía no definida", EnergyDescription(11))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "enero", MonthName(1))
	assert.Equal(t, "diciembre", MonthName(12))
	assert.Equal(t, "mes 13", MonthName(13))
	assert.Equal(t, "mes 0", MonthName(0))
}
