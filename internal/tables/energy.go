package tables

import "fmt"

// energyDescriptions describes the basic energy of each single digit.
// The day, month and year-sum lines of the report use these; unlike the
// life and name numbers they always collapse masters to one digit, so 11
// reads as energy 2.
var energyDescriptions = map[int]string{
	1: "impulso, identidad, coraje para iniciar",
	2: "sensibilidad, cooperación y energía de vínculo",
	3: "creatividad, expresión y alegría",
	4: "estructura, orden y disciplina",
	5: "cambio, libertad y experiencias intensas",
	6: "amor, responsabilidad y cuidado",
	7: "búsqueda interior, análisis y espiritualidad",
	8: "poder personal, logro y materia",
	9: "compasión, cierre de ciclos y servicio",
}

// EnergyDescription returns the basic energy text for a single digit,
// with a fixed fallback for anything outside 1-9.
func EnergyDescription(digit int) string {
	if desc, ok := energyDescriptions[digit]; ok {
		return desc
	}
	return "energía no definida"
}

// monthNames maps month numbers to their Spanish names.
var monthNames = map[int]string{
	1:  "enero",
	2:  "febrero",
	3:  "marzo",
	4:  "abril",
	5:  "mayo",
	6:  "junio",
	7:  "julio",
	8:  "agosto",
	9:  "septiembre",
	10: "octubre",
	11: "noviembre",
	12: "diciembre",
}

// MonthName returns the Spanish name of a month. Out-of-range numbers
// cannot occur after date parsing but render as "mes {n}" regardless.
func MonthName(month int) string {
	if name, ok := monthNames[month]; ok {
		return name
	}
	return fmt.Sprintf("mes %d", month)
}
