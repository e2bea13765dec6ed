package quiz

// Component names of the Colombian technology-and-informatics curriculum
// the evaluation covers.
const (
	componenteNaturaleza = "Naturaleza y Evolución de la Tecnología y la Informática"
	componenteUso        = "Uso y Apropiación de la Tecnología y la Informática"
	componenteSolucion   = "Solución de Problemas con Tecnología e Informática"
	componenteSociedad   = "Tecnología, Informática y Sociedad"
)

// DefaultCatalog returns the embedded 20-question evaluation. The static
// set is the fallback when no questions table is configured and the seed
// source for the database-backed loader.
func DefaultCatalog() Catalog {
	return NewCatalog(defaultQuestions())
}

func defaultQuestions() []Question {
	return []Question{
		{
			Texto:             "¿Cuál es uno de los objetivos principales del componente de Naturaleza y Evolución de la Tecnología y la Informática?",
			Componente:        componenteNaturaleza,
			OpcionA:           "Estudiar únicamente los artefactos digitales.",
			OpcionB:           "Reflexionar sobre la evolución de la tecnología y la informática.",
			OpcionC:           "Fomentar el uso de tecnologías obsoletas.",
			OpcionD:           "Excluir el contexto histórico de la tecnología.",
			RespuestaCorrecta: "b",
			SkillID:           1,
			Difficulty:        2,
		},
		{
			Texto:             "¿Qué concepto NO está incluido en el estudio del componente de Naturaleza y Evolución de la Tecnología e Informática?",
			Componente:        componenteNaturaleza,
			OpcionA:           "Algoritmo.",
			OpcionB:           "Proceso.",
			OpcionC:           "Innovación.",
			OpcionD:           "Agricultura.",
			RespuestaCorrecta: "d",
			SkillID:           2,
			Difficulty:        1,
		},
		{
			Texto:             "El componente de Naturaleza y Evolución de la Tecnología y la Informática se centra en",
			Componente:        componenteNaturaleza,
			OpcionA:           "La creación de nuevos dispositivos sin analizar su impacto.",
			OpcionB:           "La comprensión de principios y conceptos fundamentales de la tecnología.",
			OpcionC:           "La exclusión de contextos culturales en el estudio de la informática.",
			OpcionD:           "La fabricación de artefactos sin bases teóricas.",
			RespuestaCorrecta: "b",
			SkillID:           3,
			Difficulty:        3,
		},
		{
			Texto:             "Una de las características fundamentales estudiadas en este componente es:",
			Componente:        componenteNaturaleza,
			OpcionA:           "El color de los dispositivos tecnológicos.",
			OpcionB:           "La optimización y el uso eficiente de recursos.",
			OpcionC:           "El diseño gráfico de interfaces.",
			OpcionD:           "La historia del arte.",
			RespuestaCorrecta: "b",
			SkillID:           4,
			Difficulty:        2,
		},
		{
			Texto:             "El estudio de la naturaleza de la tecnología incluye:",
			Componente:        componenteNaturaleza,
			OpcionA:           "Solo el aspecto técnico de los dispositivos.",
			OpcionB:           "La interacción entre tecnología y sociedad.",
			OpcionC:           "La exclusión de principios científicos.",
			OpcionD:           "El uso exclusivo de tecnología moderna.",
			RespuestaCorrecta: "b",
			SkillID:           5,
			Difficulty:        3,
		},
		{
			Texto:             "El componente de Uso y Apropiación de la Tecnología y la Informática enfatiza:",
			Componente:        componenteUso,
			OpcionA:           "La creación de tecnologías sin considerar su utilidad.",
			OpcionB:           "La integración de la tecnología en diversos contextos de manera crítica.",
			OpcionC:           "La eliminación de tecnologías antiguas.",
			OpcionD:           "La ignorancia del impacto social de la tecnología.",
			RespuestaCorrecta: "b",
			SkillID:           6,
			Difficulty:        2,
		},
		{
			Texto:             "¿Cuál de las siguientes opciones es una habilidad fomentada por el componente de Uso y Apropiación de la Tecnología y la Informática?",
			Componente:        componenteUso,
			OpcionA:           "Uso superficial de aplicaciones sin comprender su funcionamiento.",
			OpcionB:           "Desarrollo de competencia en el uso crítico y creativo de tecnologías.",
			OpcionC:           "Rechazo de cualquier innovación tecnológica.",
			OpcionD:           "Uso exclusivo de tecnologías analógicas",
			RespuestaCorrecta: "b",
			SkillID:           7,
			Difficulty:        1,
		},
		{
			Texto:             "El enfoque principal del Uso y Apropiación de la Tecnología y la Informática es:",
			Componente:        componenteUso,
			OpcionA:           "El uso repetitivo de tecnologías sin innovación.",
			OpcionB:           "La apropiación y uso reflexivo de tecnologías en la solución de problemas reales.",
			OpcionC:           "La exclusión del aprendizaje colaborativo.",
			OpcionD:           "La eliminación de todas las tecnologías digitales.",
			RespuestaCorrecta: "b",
			SkillID:           8,
			Difficulty:        3,
		},
		{
			Texto:             "Una competencia clave desarrollada en este componente es:",
			Componente:        componenteUso,
			OpcionA:           "La capacidad de ignorar las innovaciones tecnológicas.",
			OpcionB:           "La habilidad para utilizar tecnologías de manera ética y responsable.",
			OpcionC:           "El desarrollo de software sin considerar su impacto.",
			OpcionD:           "La exclusión de tecnologías en el aprendizaje.",
			RespuestaCorrecta: "b",
			SkillID:           9,
			Difficulty:        2,
		},
		{
			Texto:             "El uso apropiado de tecnologías implica:",
			Componente:        componenteUso,
			OpcionA:           "Aplicarlas sin un propósito claro.",
			OpcionB:           "Integrarlas de manera crítica y ética en diferentes contextos.",
			OpcionC:           "Limitar su uso a contextos específicos.",
			OpcionD:           "Ignorar sus efectos sociales y culturales.",
			RespuestaCorrecta: "b",
			SkillID:           10,
			Difficulty:        1,
		},
		{
			Texto:             "El objetivo del componente de Solución de Problemas con Tecnología e Informática es:",
			Componente:        componenteSolucion,
			OpcionA:           "Ignorar los problemas que pueden resolverse con tecnología.",
			OpcionB:           "Limitar el uso de tecnología solo a problemas simples.",
			OpcionC:           "Crear problemas adicionales mediante el uso de tecnología.",
			OpcionD:           "Aplicar principios de ingeniería para resolver problemas prácticos.",
			RespuestaCorrecta: "d",
			SkillID:           11,
			Difficulty:        4,
		},
		{
			Texto:             "Una de las habilidades desarrolladas en este componente es:",
			Componente:        componenteSolucion,
			OpcionA:           "El uso de tecnología para la creación de soluciones innovadoras.",
			OpcionB:           "La capacidad de generar problemas y soluciones tecnológicas.",
			OpcionC:           "La exclusión del pensamiento crítico en la solución de problemas.",
			OpcionD:           "El uso exclusivo de métodos manuales para resolver problemas.",
			RespuestaCorrecta: "a",
			SkillID:           12,
			Difficulty:        2,
		},
		{
			Texto:             "El componente de Solución de Problemas con Tecnología e Informática fomenta:",
			Componente:        componenteSolucion,
			OpcionA:           "El uso de herramientas obsoletas.",
			OpcionB:           "La identificación y resolución de problemas complejos mediante tecnología.",
			OpcionC:           "La limitación del uso de tecnología en la educación.",
			OpcionD:           "La exclusión de contextos reales en la resolución de problemas.",
			RespuestaCorrecta: "b",
			SkillID:           13,
			Difficulty:        3,
		},
		{
			Texto:             "¿Qué se espera de los estudiantes en este componente?",
			Componente:        componenteSolucion,
			OpcionA:           "Que eviten el uso de cualquier tipo de tecnología.",
			OpcionB:           "Que ignoren la importancia de la tecnología en la resolución de problemas.",
			OpcionC:           "Que utilicen principios tecnológicos para solucionar problemas prácticos.",
			OpcionD:           "Que solo utilicen tecnología para problemas triviales.",
			RespuestaCorrecta: "c",
			SkillID:           14,
			Difficulty:        2,
		},
		{
			Texto:             "La solución de problemas con tecnología incluye:",
			Componente:        componenteSolucion,
			OpcionA:           "Ignorar las herramientas tecnológicas disponibles.",
			OpcionB:           "Usar la tecnología para abordar y resolver problemas del mundo real.",
			OpcionC:           "Limitarse a métodos tradicionales.",
			OpcionD:           "Aplicar soluciones tecnológicas sin evaluar su efectividad.",
			RespuestaCorrecta: "b",
			SkillID:           15,
			Difficulty:        3,
		},
		{
			Texto:             "El componente de Tecnología, Informática y Sociedad se centra en:",
			Componente:        componenteSociedad,
			OpcionA:           "El uso de tecnología sin considerar sus implicaciones sociales.",
			OpcionB:           "La exclusión de debates sobre el impacto tecnológico.",
			OpcionC:           "La promoción del aislamiento social mediante el uso de tecnología.",
			OpcionD:           "La reflexión sobre el impacto de la tecnología en la sociedad.",
			RespuestaCorrecta: "d",
			SkillID:           16,
			Difficulty:        4,
		},
		{
			Texto:             "Una de las competencias desarrolladas en este componente es:",
			Componente:        componenteSociedad,
			OpcionA:           "La habilidad para evaluar críticamente el impacto de la tecnología en la sociedad.",
			OpcionB:           "La capacidad de ignorar el impacto social de la tecnología.",
			OpcionC:           "La creación de tecnologías sin consideraciones éticas.",
			OpcionD:           "La exclusión de la tecnología en discusiones sociales.",
			RespuestaCorrecta: "a",
			SkillID:           17,
			Difficulty:        3,
		},
		{
			Texto:             "El enfoque principal de Tecnología, Informática y Sociedad es:",
			Componente:        componenteSociedad,
			OpcionA:           "La promoción del uso ético y responsable de la tecnología.",
			OpcionB:           "El uso irresponsable de tecnologías en la comunidad.",
			OpcionC:           "La creación de tecnologías sin considerar su impacto en la sociedad.",
			OpcionD:           "La exclusión de la tecnología en la mejora de la vida comunitaria.",
			RespuestaCorrecta: "a",
			SkillID:           18,
			Difficulty:        4,
		},
		{
			Texto:             "¿Qué se espera que los estudiantes comprendan en este componente?",
			Componente:        componenteSociedad,
			OpcionA:           "Que ignoren las implicaciones éticas de la tecnología.",
			OpcionB:           "Que utilicen tecnología sin considerar sus efectos en la sociedad.",
			OpcionC:           "Que evalúen el impacto de la tecnología en diversos contextos sociales.",
			OpcionD:           "Que eviten el uso de tecnología en discusiones comunitarias.",
			RespuestaCorrecta: "c",
			SkillID:           19,
			Difficulty:        3,
		},
		{
			Texto:             "El análisis del impacto de la tecnología en la sociedad incluye:",
			Componente:        componenteSociedad,
			OpcionA:           "Solo considerar aspectos técnicos.",
			OpcionB:           "Limitar el uso de tecnología en contextos académicos.",
			OpcionC:           "Ignorar el contexto cultural.",
			OpcionD:           "Evaluar las implicaciones sociales, culturales y éticas.",
			RespuestaCorrecta: "d",
			SkillID:           20,
			Difficulty:        4,
		},
	}
}
