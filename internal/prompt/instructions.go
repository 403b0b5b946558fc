package prompt

import "fadhakker-backend/internal/language"

// roleLabels maps a language to the labels used when rendering prior turns
// into the prompt.
var roleLabels = map[language.Tag]struct{ user, assistant string }{
	language.Arabic:  {"السائل", "المساعد"},
	language.English: {"Questioner", "Assistant"},
	language.French:  {"Le questionneur", "L'assistant"},
	language.Spanish: {"Preguntador", "Asistente"},
	language.German:  {"Fragesteller", "Assistent"},
}

// historyHeaders introduces the prior-turns block.
var historyHeaders = map[language.Tag]string{
	language.Arabic:  "سياق المحادثة السابقة:",
	language.English: "Previous conversation context:",
	language.French:  "Contexte de la conversation précédente :",
	language.Spanish: "Contexto de la conversación anterior:",
	language.German:  "Kontext des bisherigen Gesprächs:",
}

// questionHeaders labels the current question.
var questionHeaders = map[language.Tag]string{
	language.Arabic:  "السؤال الحالي:",
	language.English: "Current question:",
	language.French:  "Question actuelle :",
	language.Spanish: "Pregunta actual:",
	language.German:  "Aktuelle Frage:",
}

// instructions holds the language-specific answer directives appended after
// the question: format, evidence and brevity rules, plus the answer cue. The
// Arabic block is the canonical one; the others mirror it.
var instructions = map[language.Tag]string{
	language.Arabic: `يرجى تقديم إجابة مفيدة ودقيقة باللغة العربية مع مراعاة:
- استخدام تنسيق واضح مع فقرات منفصلة
- ترقيم الخطوات أو النقاط المهمة
- ذكر الأدلة الشرعية المناسبة
- الإيجاز مع الوضوح
- استخدام أمثلة عملية عند الحاجة

الإجابة:`,
	language.English: `Please give a helpful and accurate answer in English, observing:
- clear formatting with separate paragraphs
- numbered steps or key points
- relevant evidence from the Quran and Sunnah where possible
- brevity combined with clarity
- practical examples where useful

Answer:`,
	language.French: `Veuillez donner une réponse utile et précise en français, en respectant :
- une mise en forme claire avec des paragraphes séparés
- des étapes ou points importants numérotés
- les preuves du Coran et de la Sunna lorsque c'est possible
- la concision alliée à la clarté
- des exemples pratiques si nécessaire

Réponse :`,
	language.Spanish: `Por favor, da una respuesta útil y precisa en español, respetando:
- un formato claro con párrafos separados
- pasos o puntos importantes numerados
- las evidencias del Corán y la Sunna cuando sea posible
- brevedad combinada con claridad
- ejemplos prácticos cuando ayuden

Respuesta:`,
	language.German: `Bitte gib eine hilfreiche und genaue Antwort auf Deutsch und beachte dabei:
- klare Formatierung mit getrennten Absätzen
- nummerierte Schritte oder wichtige Punkte
- Belege aus Koran und Sunna, wo möglich
- Kürze verbunden mit Klarheit
- praktische Beispiele, wo sie helfen

Antwort:`,
}

// Instructions returns the directive block for lang. Unknown tags fall back
// to the English text.
func Instructions(lang language.Tag) string {
	if s, ok := instructions[lang]; ok {
		return s
	}
	return instructions[language.English]
}

func labelsFor(lang language.Tag) struct{ user, assistant string } {
	if l, ok := roleLabels[lang]; ok {
		return l
	}
	return roleLabels[language.English]
}

func headerFor(m map[language.Tag]string, lang language.Tag) string {
	if s, ok := m[lang]; ok {
		return s
	}
	return m[language.English]
}
