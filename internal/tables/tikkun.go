package tables

import "github.com/solmira/arquetipo/pkg/types"

// tikkunTemplates holds the detailed tikkun text per life number. The
// master-number entries are deliberately longer than the single-digit
// ones; the assembler renders whatever lists are present.
var tikkunTemplates = map[int]types.TikkunTemplate{
	1: {
		CentralTheme: []string{
			"Aprender a usar tu fuerza de inicio como canal de Luz y no como imposición del ego.",
			"Pasar de la soledad orgullosa a la autenticidad que permite recibir ayuda sin sentirse débil.",
		},
		Patterns: []string{
			"Sentirte responsable de abrir camino y tomar decisiones incluso cuando preferirías descansar.",
			"Choques con figuras de autoridad donde aparece el impulso de competir o demostrar que tienes razón.",
			"Momentos donde te exiges ser fuerte y autosuficiente, evitando mostrar vulnerabilidad.",
		},
		CorrectionPhrases: []string{
			"Rectificar el orgullo y la dureza, transformándolos en liderazgo valiente y compasivo.",
			"Rectificar la idea de que pedir ayuda es debilidad, entendiendo que compartir también es fuerza.",
		},
		Keys: []string{
			"Practicar decisiones donde elijas liderar sin aplastar las voces de los demás.",
			"Aprender a delegar pequeñas tareas para que el alma se acostumbre a no cargar con todo.",
			"Reconocer tus necesidades emocionales y expresarlas con honestidad.",
		},
		Questions: []string{
			"Dónde estoy intentando hacerlo todo solo por miedo a que otros no estén a la altura.",
			"Qué parte de mí se siente obligada a ser siempre fuerte.",
			"Qué cambiaría si permitiera que mi liderazgo viniera más del corazón y menos del orgullo.",
		},
	},
	2: {
		CentralTheme: []string{
			"Sanar la dependencia emocional y el miedo al rechazo para crear vínculos de igualdad.",
			"Pasar de la necesidad de aprobación a la cooperación desde la dignidad.",
		},
		Patterns: []string{
			"Relaciones donde te adaptas demasiado para no generar conflicto.",
			"Miedo a decir lo que sientes por temor a perder al otro.",
			"Dificultad para tomar decisiones solo por no equivocarte o decepcionar.",
		},
		CorrectionPhrases: []string{
			"Rectificar la tendencia a borrarte para sostener la paz, transformándola en acuerdos claros y honestos.",
			"Rectificar la creencia de que solo mereces amor si no incomodas a nadie.",
		},
		Keys: []string{
			"Practicar conversaciones donde expreses lo que sientes sin suavizar en exceso tu verdad.",
			"Reconocer cuándo ayudas desde el amor y cuándo lo haces por miedo a ser abandonado.",
			"Elegir relaciones donde tu voz tenga el mismo peso que la de los demás.",
		},
		Questions: []string{
			"En qué situaciones sigo callando por miedo a perder a alguien.",
			"Dónde siento que doy más de lo que recibo.",
			"Qué aspecto de mi verdad ya no quiero seguir escondiendo.",
		},
	},
	3: {
		CentralTheme: []string{
			"Transformar la necesidad de ser visto en expresión auténtica del alma.",
			"Canalizar la creatividad como servicio y no solo como entretenimiento.",
		},
		Patterns: []string{
			"Subidas y bajadas de ánimo según cuánto reconocimiento sientes que recibes.",
			"Muchos comienzos creativos y pocas cosas terminadas.",
			"Uso del humor o la ligereza para evitar entrar en emociones profundas.",
		},
		CorrectionPhrases: []string{
			"Rectificar la búsqueda de validación externa, reconociendo tu valor incluso cuando nadie aplaude.",
			"Rectificar la dispersión creativa, enfocando tus dones en proyectos que construyan algo real.",
		},
		Keys: []string{
			"Elegir un par de proyectos clave y comprometerte a terminarlos.",
			"Usar la escritura, el arte o la voz para procesar emociones, no solo para distraer.",
			"Aceptar que no siempre serás entendido en el momento, pero tu mensaje puede sembrar a largo plazo.",
		},
		Questions: []string{
			"Dónde estoy usando la risa o la distracción para no sentir lo que realmente me pasa.",
			"Qué proyecto creativo necesito honrar terminándolo.",
			"Cómo sería expresar mi verdad incluso si nadie la celebra al inicio.",
		},
	},
	4: {
		CentralTheme: []string{
			"Construir estructura interna y externa sin caer en la rigidez.",
			"Aprender a confiar en la Luz incluso cuando el plan no se cumple como esperabas.",
		},
		Patterns: []string{
			"Necesidad de tener todo bajo control para sentirte seguro.",
			"Miedo a los cambios imprevistos o a lo que no se puede planear.",
			"Tendencia a cargar con más responsabilidades de las que te corresponden.",
		},
		CorrectionPhrases: []string{
			"Rectificar la rigidez mental, transformándola en disciplina flexible.",
			"Rectificar la idea de que todo depende solo de tu esfuerzo, integrando la confianza en algo superior.",
		},
		Keys: []string{
			"Dejar pequeños espacios de improvisación en tu día para entrenar la flexibilidad.",
			"Aprender a decir que no a responsabilidades que no te pertenecen.",
			"Ver la disciplina como un acto de amor propio y no como castigo.",
		},
		Questions: []string{
			"Qué parte de mi vida siento que se derrumba si dejo de controlar tanto.",
			"Dónde estoy siendo demasiado duro conmigo mismo.",
			"Qué estructura puedo crear que me dé paz en lugar de presión.",
		},
	},
	5: {
		CentralTheme: []string{
			"Convertir el impulso de huir en capacidad de transformar.",
			"Aprender a vivir la libertad como elección consciente, no como reacción al miedo.",
		},
		Patterns: []string{
			"Etapas de entusiasmo intenso seguidas de aburrimiento o ganas de escapar.",
			"Cambios frecuentes de rumbo cuando algo empieza a sentirse rutinario.",
			"Dificultad para sostener compromisos a largo plazo.",
		},
		CorrectionPhrases: []string{
			"Rectificar la impulsividad, transformando el impulso en movimiento con propósito.",
			"Rectificar la idea de que compromiso significa cárcel, descubriendo acuerdos que respetan tu alma.",
		},
		Keys: []string{
			"Elegir conscientemente qué batallas y qué caminos valen tu energía a largo plazo.",
			"Introducir cambios sanos dentro de tus compromisos en lugar de romperlo todo.",
			"Explorar nuevas experiencias que expandan tu conciencia, no solo tu adrenalina.",
		},
		Questions: []string{
			"Dónde suelo irme cuando algo se vuelve incómodo en lugar de transformarlo.",
			"Qué compromisos me dan vida y cuáles siento como cadena.",
			"Cómo puedo honrar mi necesidad de cambio sin destruir lo que ya construí.",
		},
	},
	6: {
		CentralTheme: []string{
			"Aprender a cuidar sin cargarte de más.",
			"Equilibrar el amor hacia otros con el amor hacia ti mismo.",
		},
		Patterns: []string{
			"Ponerte en el rol de quien sostiene a todos.",
			"Sentir culpa cuando haces algo solo para ti.",
			"Perfeccionismo en la familia, en el hogar o en el trabajo de cuidado.",
		},
		CorrectionPhrases: []string{
			"Rectificar la autoexigencia, transformándola en responsabilidad amorosa.",
			"Rectificar la creencia de que solo mereces amor si lo das todo y nunca fallas.",
		},
		Keys: []string{
			"Practicar el descanso como una forma de servicio a tu propia alma.",
			"Aceptar que el error también educa y humaniza las relaciones.",
			"Reconocer cuándo un cuidado es amor y cuándo se vuelve sacrificio tóxico.",
		},
		Questions: []string{
			"En qué áreas me estoy descuidando mientras cuido a otros.",
			"Qué expectativas irreales tengo sobre mí en el rol de cuidador o figura de apoyo.",
			"Qué cambiaría si me permitiera ser suficiente tal como soy ahora.",
		},
	},
	7: {
		CentralTheme: []string{
			"Unir mente y corazón, conocimiento y experiencia.",
			"Aprender a confiar no solo en los datos, sino también en la intuición y en la vida.",
		},
		Patterns: []string{
			"Necesidad de entenderlo todo antes de dar un paso.",
			"Periodos de aislamiento para proteger tu mundo interior.",
			"Desconfianza hacia lo emocional o hacia lo que no tiene una lógica clara.",
		},
		CorrectionPhrases: []string{
			"Rectificar el exceso de análisis que paraliza la acción.",
			"Rectificar la desconfianza en la vida, abriéndote poco a poco al vínculo y a la vulnerabilidad.",
		},
		Keys: []string{
			"Combinar estudio y práctica, no quedarte solo en la teoría.",
			"Elegir una o dos personas con las que puedas mostrar tu mundo interior sin máscaras.",
			"Tomar decisiones pequeñas guiadas por intuiciones suaves, no solo por cálculos mentales.",
		},
		Questions: []string{
			"Dónde me escondo detrás de la mente para no sentir.",
			"Qué tipo de espiritualidad resuena conmigo más allá de dogmas.",
			"Qué miedo aparece cuando pienso en confiar más en otros.",
		},
	},
	8: {
		CentralTheme: []string{
			"Usar el poder y los recursos como canales de Luz.",
			"Aprender a liderar desde la ética y la conciencia, no solo desde el resultado.",
		},
		Patterns: []string{
			"Atracción a escenarios de poder, dinero, liderazgo o conflicto.",
			"Sensación de cargar con grandes responsabilidades materiales.",
			"Tensiones con figuras de autoridad o con estructuras de control.",
		},
		CorrectionPhrases: []string{
			"Rectificar el uso del poder para beneficio solo personal, transformándolo en poder compartido.",
			"Rectificar la dureza frente a la vulnerabilidad propia y ajena.",
		},
		Keys: []string{
			"Definir qué significa para ti el éxito con conciencia.",
			"Elegir proyectos donde tu impacto beneficie a más personas, no solo a tu ego.",
			"Practicar la generosidad responsable con tu tiempo, dinero y energía.",
		},
		Questions: []string{
			"Qué entiendo hoy por poder y qué me gustaría entender en el futuro.",
			"Dónde siento que el dinero o el reconocimiento gobiernan demasiado mis decisiones.",
			"Cómo puedo liderar de una forma que deje más Luz que miedo.",
		},
	},
	9: {
		CentralTheme: []string{
			"Cerrar ciclos con amor y desapego.",
			"Transformar el dolor del pasado en sabiduría y servicio.",
		},
		Patterns: []string{
			"Tendencia a quedarte en historias que ya se terminaron.",
			"Fácil conexión con el sufrimiento ajeno y con causas colectivas.",
			"Dificultad para priorizarte cuando ves a otros pasándolo mal.",
		},
		CorrectionPhrases: []string{
			"Rectificar el apego al rol de salvador, permitiendo que cada alma haga su camino.",
			"Rectificar la culpa por soltar personas o situaciones que ya cumplieron su ciclo.",
		},
		Keys: []string{
			"Honrar los cierres como actos de amor, no como fracasos.",
			"Elegir pocas causas o personas a las que acompañar a profundidad.",
			"Usar tu sensibilidad para inspirar esperanza, no solo para cargar dolor.",
		},
		Questions: []string{
			"Qué etapa de mi vida se siente cerrada, pero aún no me animo a soltar del todo.",
			"Dónde sigo cargando responsabilidades emocionales que no son mías.",
			"Qué me gustaría ofrecer al mundo desde mi experiencia de dolor y sanación.",
		},
	},
	11: {
		CentralTheme: []string{
			"Pasar del control al liderazgo consciente alineado con la Luz.",
			"Equilibrar una sensibilidad muy alta con una estructura interna sólida.",
			"Aprender a confiar en tu intuición como canal, sin miedo a lo que percibes.",
			"Transformar vínculos de dependencia en relaciones de cooperación y coautoría.",
		},
		Patterns: []string{
			"Personas que se apoyan mucho en ti o que te buscan como consejero aunque tú no te sientas listo.",
			"Situaciones donde te toca tomar decisiones clave para otros o sostener procesos delicados.",
			"Relaciones en las que terminas dando más de lo que recibes, con dificultad para soltar.",
			"Momentos de contraste entre gran fuerza interior y estados de vulnerabilidad o agotamiento emocional.",
			"Encuentros repetidos con sistemas o figuras de autoridad rígidas, que te invitan a posicionarte sin destruirte ni someterte.",
		},
		CorrectionPhrases: []string{
			"Rectificar el uso del poder personal, pasando del control y la dureza a la autoridad sana y compasiva.",
			"Rectificar la tendencia a perderte en el otro, creando vínculos con límites claros y reciprocidad.",
			"Rectificar el miedo a tu propia intuición, transformándolo en confianza en la guía interna y en la Luz.",
			"Rectificar la costumbre de cargar culpas ajenas, asumiendo solo la responsabilidad que realmente te corresponde.",
		},
		Keys: []string{
			"Aprender a decir que no sin sentirte egoísta, entendiendo que el límite también es Luz.",
			"Cuidar tu sistema nervioso con descanso, silencio, escritura y espacios de conexión espiritual.",
			"Elegir relaciones y proyectos donde la cooperación sea real y no solo un discurso.",
			"Trabajar el perdón hacia ti mismo por decisiones pasadas, viendo cada etapa como parte del aprendizaje del alma.",
			"Convertir tu visión y sensibilidad en servicio concreto: proyectos, estudios, acompañamientos, contenido.",
			"Practicar actos pequeños de liderazgo consciente: hablar con honestidad, marcar dirección, sostener acuerdos claros.",
		},
		Questions: []string{
			"En qué situaciones recientes sentí que estaba controlando por miedo y no liderando desde la confianza.",
			"Dónde sigo intentando salvar a personas o sistemas que no quieren cambiar.",
			"Qué parte de mi sensibilidad aún juzgo como debilidad.",
			"Qué tipo de líder del alma quiero ser en mi casa, trabajo y relaciones.",
			"Qué ciclo necesito cerrar para liberar energía y caminar más ligero.",
		},
	},
	22: {
		CentralTheme: []string{
			"Materializar visión espiritual en proyectos concretos.",
			"Usar tu capacidad organizativa para construir algo que trascienda lo personal.",
		},
		Patterns: []string{
			"Atracción a metas grandes que a veces parecen imposibles.",
			"Sensación de presión interna por no estar haciendo lo suficiente.",
			"Dificultad para equilibrar la vida personal con proyectos de gran escala.",
		},
		CorrectionPhrases: []string{
			"Rectificar la autoexigencia extrema, integrando paciencia y procesos.",
			"Rectificar la tendencia a descuidar tu mundo emocional por el logro externo.",
		},
		Keys: []string{
			"Dividir tus grandes visiones en pasos pequeños y sostenibles.",
			"Recordar que el proyecto más importante también eres tú.",
			"Aliarte con personas que compartan tu visión en lugar de cargar tú solo con todo.",
		},
		Questions: []string{
			"Qué visión de largo plazo me inspira de verdad.",
			"Qué parte de mí siente que nunca es suficiente.",
			"Cómo puedo construir algo grande cuidando también de mi cuerpo y mis emociones.",
		},
	},
	33: {
		CentralTheme: []string{
			"Encarnar un amor profundo que no olvida los propios límites.",
			"Sostener procesos de sanación sin sacrificar tu energía vital.",
		},
		Patterns: []string{
			"Personas que descargan en ti sus dolores y confían en tu contención.",
			"Cansancio emocional por asumir demasiados procesos ajenos.",
			"Confusión entre ayudar y hacerse cargo de lo que no te corresponde.",
		},
		CorrectionPhrases: []string{
			"Rectificar la identificación con el rol de salvador.",
			"Rectificar la culpa por poner límites cuando ya estás saturado.",
		},
		Keys: []string{
			"Definir con claridad qué sí puedes ofrecer y qué no.",
			"Aprender a retirarte a tiempo antes de agotarte.",
			"Cuidar tu cuerpo, tu descanso y tu alegría como parte esencial de tu misión.",
		},
		Questions: []string{
			"Dónde estoy intentando sanar algo que no me corresponde.",
			"Qué señales me da mi cuerpo cuando ya es demasiado.",
			"Qué tipo de amor quiero encarnar que incluya también amor por mí.",
		},
	},
}

// Tikkun resolves the template for a life number. Resolution order: the
// life number itself, then its single-digit collapse, then a synthesized
// minimal template carrying only the archetype's correction theme as its
// central theme. The synthesized fallback keeps every other section
// empty so the assembler omits them.
func Tikkun(lifeNumber, simpleDigit int) types.TikkunTemplate {
	if tpl, ok := tikkunTemplates[lifeNumber]; ok {
		return tpl
	}
	if tpl, ok := tikkunTemplates[simpleDigit]; ok {
		return tpl
	}
	return types.TikkunTemplate{
		CentralTheme: []string{Archetype(lifeNumber).CorrectionTheme},
	}
}
