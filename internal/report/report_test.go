package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmira/arquetipo/internal/tables"
	"github.com/solmira/arquetipo/pkg/types"
)

func TestComputeMasterLifePath(t *testing.T) {
	result, err := Compute("María", "25/12/1990")
	require.NoError(t, err)

	assert.Equal(t, "María", result.NameInput)
	assert.Equal(t, 56, result.Date.BaseTotal)
	assert.Equal(t, 11, result.LifeNumber)
	assert.Equal(t, "11/2", result.Date.PathLabel)
	assert.Equal(t, 6, result.NameNumber)
	assert.Equal(t, tables.Archetype(11), result.LifeArchetype)
	assert.Equal(t, tables.Archetype(6), result.NameArchetype)
	assert.Equal(t, tables.Tikkun(11, 2), result.Tikkun)
}

func TestComputeErrors(t *testing.T) {
	_, err := Compute("123", "25/12/1990")
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = Compute("María", "31/02/2000")
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

func TestGenerateReportContent(t *testing.T) {
	out, err := Generate("María", "25/12/1990")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Voy directo al grano usando tu fecha: 25 de diciembre de 1990.", lines[0])

	// Digit-sum breakdown.
	assert.Contains(t, out, "• Día del nacimiento: 25")
	assert.Contains(t, out, "• Año de nacimiento: 1990 → suma de sus dígitos 19")
	assert.Contains(t, out, "Total: 25 (día) + 12 (mes) + 19 (suma del año) = 56 → camino 11/2")

	// Energy lines use the full reduction: day 25 -> 7, month 12 -> 3,
	// year sum 19 -> 1.
	assert.Contains(t, out, "• Día 25: resuena en una energía 7 asociada a búsqueda interior, análisis y espiritualidad.")
	assert.Contains(t, out, "• Mes 12: resuena en una energía 3 asociada a creatividad, expresión y alegría.")
	assert.Contains(t, out, "• Año 1990 con suma 19: energía 1 asociada a impulso, identidad, coraje para iniciar.")

	// Life archetype and synthesized correction summary.
	assert.Contains(t, out, "• Arquetipo kabalista de vida: Canal Maestro de Intuición y Revelación")
	assert.Contains(t, out, "• En resumen, tu tikkun de fondo es: "+tables.Archetype(11).CorrectionTheme)

	// Name section.
	assert.Contains(t, out, "• Tu nombre, al vibrar en el número 6, se asocia al arquetipo Canal de Responsabilidad y Amor en el Hogar.")

	// Closing synthesis.
	assert.Contains(t, out, "la fecha muestra el plan de fondo del alma")
}

func TestGenerateBothDateFormatsIdentical(t *testing.T) {
	slash, err := Generate("María", "25/12/1990")
	require.NoError(t, err)

	dash, err := Generate("María", "1990-12-25")
	require.NoError(t, err)

	// Identical up to the echoed input, which the report does not print.
	assert.Equal(t, slash, dash)
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate("Carlos Ruiz", "03/07/1985")
	require.NoError(t, err)

	second, err := Generate("Carlos Ruiz", "03/07/1985")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate("123", "25/12/1990")
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = Generate("María", "31/02/2000")
	assert.ErrorIs(t, err, types.ErrInvalidDate)

	_, err = Generate("María", "nonsense")
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

// Empty template lists drop the whole section, header included.
func TestRenderOmitsEmptySections(t *testing.T) {
	result, err := Compute("María", "25/12/1990")
	require.NoError(t, err)

	result.Tikkun = types.TikkunTemplate{
		CentralTheme: []string{"único tema"},
	}

	out := Render(result)
	assert.Contains(t, out, "• único tema")
	assert.NotContains(t, out, "Patrones que tienden a repetirse")
	assert.NotContains(t, out, "Claves de sanación y evolución")
	assert.NotContains(t, out, "Preguntas para trabajar este proceso")

	// The correction section still appears: its synthesized summary
	// bullet does not depend on the template.
	assert.Contains(t, out, "Lo que vienes a rectificar, en frases directas:")
	assert.Contains(t, out, "• En resumen, tu tikkun de fondo es:")
}

func TestRenderFullTemplateHasAllSections(t *testing.T) {
	result, err := Compute("María", "25/12/1990")
	require.NoError(t, err)

	out := Render(result)
	assert.Contains(t, out, "Patrones que tienden a repetirse")
	assert.Contains(t, out, "Claves de sanación y evolución")
	assert.Contains(t, out, "Preguntas para trabajar este proceso")
}
