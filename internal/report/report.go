// Package report turns a name and a birth date into the final archetype
// and tikkun report. Compute resolves every number and lookup into a
// ComputationResult; Render assembles the fixed Spanish narrative from
// it; Generate chains the two.
package report

import (
	"fmt"
	"strings"

	"github.com/solmira/arquetipo/internal/numerology"
	"github.com/solmira/arquetipo/internal/tables"
	"github.com/solmira/arquetipo/pkg/types"
)

// Generate is the single entry point the presentation shells call. It
// returns the multi-paragraph report, or ErrInvalidInput / ErrInvalidDate
// when one of the inputs is unusable.
func Generate(fullName, birthDate string) (string, error) {
	result, err := Compute(fullName, birthDate)
	if err != nil {
		return "", err
	}
	return Render(result), nil
}

// Compute resolves the full numerological picture for a name and birth
// date: the date breakdown, life and name numbers, their archetypes and
// the tikkun template.
func Compute(fullName, birthDate string) (types.ComputationResult, error) {
	dateInfo, err := numerology.AnalyzeDate(birthDate)
	if err != nil {
		return types.ComputationResult{}, err
	}

	nameNumber, err := numerology.NameNumber(fullName)
	if err != nil {
		return types.ComputationResult{}, err
	}

	return types.ComputationResult{
		NameInput:     fullName,
		DateInput:     birthDate,
		Date:          dateInfo,
		LifeNumber:    dateInfo.LifeNumber,
		LifeArchetype: tables.Archetype(dateInfo.LifeNumber),
		NameNumber:    nameNumber,
		NameArchetype: tables.Archetype(nameNumber),
		Tikkun:        tables.Tikkun(dateInfo.LifeNumber, dateInfo.SimpleDigit),
	}, nil
}

// energy collapses a number to a single digit and pairs it with its
// basic energy description. Reduction cannot fail for parsed date
// components; should it anyway, the zero digit falls through to the
// table's fixed fallback text.
func energy(n int) (int, string) {
	digit, err := numerology.ReduceFully(n)
	if err != nil {
		digit = 0
	}
	return digit, tables.EnergyDescription(digit)
}

// Render assembles the report in its fixed section order. Template
// sections with no entries are omitted entirely, header included.
func Render(r types.ComputationResult) string {
	d := r.Date
	lifeArch := r.LifeArchetype
	nameArch := r.NameArchetype
	tpl := r.Tikkun

	dayEnergy, dayDesc := energy(d.Day)
	monthEnergy, monthDesc := energy(d.Month)
	yearEnergy, yearDesc := energy(d.YearDigitSum)

	var lines []string
	add := func(format string, args ...any) {
		if len(args) == 0 {
			lines = append(lines, format)
			return
		}
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	bullets := func(items []string) {
		for _, item := range items {
			lines = append(lines, "• "+item)
		}
	}

	add("Voy directo al grano usando tu fecha: %d de %s de %d.", d.Day, tables.MonthName(d.Month), d.Year)
	add("")
	add("Desde la mirada numerológica kabalista, como mapa simbólico y no como sentencia rígida, "+
		"tu fecha habla de un camino %s.", d.PathLabel)
	add("Ese camino se apoya especialmente en la energía de tu día y tu mes de nacimiento, " +
		"que colorean la forma en que vives tu tikkun.")
	add("")

	add("Suma básica de la fecha:")
	add("• Día del nacimiento: %d", d.Day)
	add("• Mes del nacimiento: %d", d.Month)
	add("• Año de nacimiento: %d → suma de sus dígitos %d", d.Year, d.YearDigitSum)
	add("Total: %d (día) + %d (mes) + %d (suma del año) = %d → camino %s",
		d.Day, d.Month, d.YearDigitSum, d.BaseTotal, d.PathLabel)
	add("")

	add("Energías que sostienen tu camino de alma:")
	add("• Día %d: resuena en una energía %d asociada a %s.", d.Day, dayEnergy, dayDesc)
	add("• Mes %d: resuena en una energía %d asociada a %s.", d.Month, monthEnergy, monthDesc)
	add("• Año %d con suma %d: energía %d asociada a %s.", d.Year, d.YearDigitSum, yearEnergy, yearDesc)
	add("")

	add("Arquetipo central según tu número de vida:")
	add("• Arquetipo kabalista de vida: %s", lifeArch.Title)
	add("• Descripción general: %s", lifeArch.Description)
	add("")

	add("Tema central de tu tikkun, lo que vienes a rectificar en esta encarnación:")
	bullets(tpl.CentralTheme)
	add("")

	if len(tpl.Patterns) > 0 {
		add("Patrones que tienden a repetirse para este arquetipo, donde suele activarse el trabajo del alma:")
		bullets(tpl.Patterns)
		add("")
	}

	add("Lo que vienes a rectificar, en frases directas:")
	bullets(tpl.CorrectionPhrases)
	add("• En resumen, tu tikkun de fondo es: %s", lifeArch.CorrectionTheme)
	add("")

	if len(tpl.Keys) > 0 {
		add("Claves de sanación y evolución para tu arquetipo:")
		bullets(tpl.Keys)
		add("")
	}

	if len(tpl.Questions) > 0 {
		add("Preguntas para trabajar este proceso en escritura, reflexión o meditación:")
		bullets(tpl.Questions)
		add("")
	}

	add("Aportación de tu nombre, es decir, cómo se expresa tu alma en el mundo:")
	add("• Tu nombre, al vibrar en el número %d, se asocia al arquetipo %s.", r.NameNumber, nameArch.Title)
	add("• Descripción: %s", nameArch.Description)
	add("• Tikkun asociado a tu forma de expresarte y relacionarte: %s", nameArch.CorrectionTheme)
	add("")
	add("En otras palabras, la fecha muestra el plan de fondo del alma y el nombre muestra " +
		"el estilo con el que encarnas ese plan en la realidad diaria.")

	return strings.Join(lines, "\n")
}
