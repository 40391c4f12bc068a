// Package tables holds the static Spanish text data the report is built
// from: archetype entries, tikkun templates, basic energy descriptions
// and month names. All maps are built once at process start and never
// mutated.
package tables

import "github.com/solmira/arquetipo/pkg/types"

// undefinedArchetype is returned for numbers outside the reduction
// domain. Lookups fall back to it instead of failing so the report can
// always be assembled.
var undefinedArchetype = types.ArchetypeEntry{
	Title:           "Arquetipo no definido",
	Description:     "El número calculado no tiene un arquetipo configurado.",
	CorrectionTheme: "No hay información de tikkun configurada para este número.",
}

// archetypes maps each reduced number in {1..9, 11, 22, 33} to its
// kabbalistic archetype.
var archetypes = map[int]types.ArchetypeEntry{
	1: {
		Title: "Canal de Voluntad y Autoafirmación",
		Description: "Energía asociada a la chispa inicial del deseo. Representa la capacidad de " +
			"iniciar, liderar y abrir camino. En términos kabalistas, es un canal fuerte " +
			"de voluntad que puede conectarse con un propósito elevado cuando se alinea con la Luz.",
		CorrectionTheme: "Transformar el orgullo y la necesidad de tener siempre la razón en liderazgo al servicio de algo más grande que el ego.",
	},
	2: {
		Title: "Canal de Unión y Receptividad",
		Description: "Energía vinculada a la sensibilidad y al mundo de las relaciones. Refleja la conciencia de separación " +
			"y la búsqueda de unidad. Se conecta con la idea de aprender a recibir de manera equilibrada, sin perder la propia esencia.",
		CorrectionTheme: "Aprender a poner límites sin culpa y a no perder tu voz interior por miedo a ser rechazado.",
	},
	3: {
		Title: "Canal de Expresión y Alegría Creativa",
		Description: "Energía que se vincula con la expresión del alma a través de la palabra, el arte y la comunicación. " +
			"En la Kábala se asocia con la capacidad de revelar Luz a través de la belleza y la vibración de la alegría.",
		CorrectionTheme: "Convertir la dispersión y la necesidad de aprobación en responsabilidad creativa y expresión auténtica.",
	},
	4: {
		Title: "Canal de Estructura y Disciplina Espiritual",
		Description: "Energía relacionada con la construcción de recipientes firmes. Es la tarea de crear vasijas internas " +
			"estables para sostener la Luz: orden, disciplina y trabajo constante.",
		CorrectionTheme: "Soltar la rigidez y el control excesivo para integrar confianza, flexibilidad y fe en el proceso.",
	},
	5: {
		Title: "Canal de Cambio y Libertad del Alma",
		Description: "Energía asociada al movimiento, el viaje y la expansión. Representa al alma que busca romper " +
			"viejas limitaciones y expandir su conciencia a través de experiencias intensas.",
		CorrectionTheme: "Transformar la huida y el miedo al compromiso en libertad interior con responsabilidad.",
	},
	6: {
		Title: "Canal de Responsabilidad y Amor en el Hogar",
		Description: "Energía ligada al cuidado, la armonía familiar y la belleza. Es un campo donde el alma aprende a manifestar " +
			"amor consciente en lo cotidiano, sin olvidarse de sí misma.",
		CorrectionTheme: "Sanar el perfeccionismo y la autoexigencia, aprendiendo a cuidar sin cargar con todo el peso del mundo.",
	},
	7: {
		Title: "Canal de Sabiduría Interior y Búsqueda Espiritual",
		Description: "Energía conectada con la introspección, el estudio y el misterio. Es el alma que busca entender la causa " +
			"detrás de cada efecto y no se conforma con lo superficial.",
		CorrectionTheme: "Transformar el aislamiento, la desconfianza y el exceso de mente en confianza espiritual y apertura al vínculo.",
	},
	8: {
		Title: "Canal de Poder, Abundancia y Rectificación del Deseo",
		Description: "Energía vinculada a la manifestación en el plano material: liderazgo, recursos y autoridad. " +
			"Tiene que ver con corregir el deseo de recibir solo para uno mismo hacia el deseo de recibir para compartir.",
		CorrectionTheme: "Usar el poder y la abundancia como canales de Luz, no solo como logros del ego.",
	},
	9: {
		Title: "Canal de Compasión y Servicio Universal",
		Description: "Energía que vibra con el cierre de ciclos, el perdón y el servicio al colectivo. " +
			"Invita a comprender que todas las almas están conectadas.",
		CorrectionTheme: "Soltar el apego al sufrimiento y al rol de salvador, integrando un servicio equilibrado y amoroso.",
	},
	11: {
		Title: "Canal Maestro de Intuición y Revelación",
		Description: "Número maestro asociado a una sensibilidad espiritual muy elevada. Es un canal para recibir inspiración, " +
			"visiones y mensajes que aportan claridad a otros.",
		CorrectionTheme: "Confiar en tu intuición sin dejarte paralizar por el miedo al juicio, integrando tu visión espiritual en la vida práctica diaria.",
	},
	22: {
		Title: "Canal Maestro de Construcción del Mundo",
		Description: "Número maestro ligado a la capacidad de materializar grandes proyectos colectivos. Es la misión de convertir " +
			"ideas elevadas en recipientes concretos en el mundo físico.",
		CorrectionTheme: "Equilibrar la presión interna de lograr cosas grandes con el autocuidado, la paciencia y la humildad.",
	},
	33: {
		Title:           "Canal Maestro de Amor y Sanación",
		Description:     "Número maestro conectado con el amor expansivo y la sanación profunda. Sostiene procesos emocionales o espirituales muy sensibles.",
		CorrectionTheme: "Aprender a servir sin vaciarte, sosteniendo límites amorosos y respetando tu propia energía vital.",
	},
}

// Archetype returns the archetype entry for a reduced number. Numbers
// outside {1..9, 11, 22, 33} cannot occur given the reduction contract,
// but rather than failing the lookup falls back to a fixed sentinel
// entry, keeping report generation total.
func Archetype(number int) types.ArchetypeEntry {
	if entry, ok := archetypes[number]; ok {
		return entry
	}
	return undefinedArchetype
}
