package language

import (
	"strings"
	"unicode"
)

// Tag identifies the locale bucket a question was classified into. It selects
// the prompt instructions, role labels and localized error text used for the
// rest of the request.
type Tag string

const (
	Arabic  Tag = "arabic"
	English Tag = "english"
	French  Tag = "french"
	Spanish Tag = "spanish"
	German  Tag = "german"
)

// Supported lists every tag the service can answer in, in display order.
func Supported() []Tag {
	return []Tag{Arabic, English, French, Spanish, German}
}

// Lexical signals per language. These are small curated sets of interrogative
// and domain words; the character sets cover diacritics that rarely appear
// outside the language in question.
var (
	// é is deliberately absent from the French set: it shows up in Spanish
	// interrogatives (qué) and would shadow the Spanish check below.
	frenchChars  = "àâçèêëîïôùûœ"
	spanishChars = "¿¡ñáíóú"
	germanChars  = "äöüß"

	frenchWords = wordSet(
		"pourquoi", "quand", "combien", "quelle", "quelles",
		"quel", "quels", "est-ce", "prière", "priere", "ablutions",
	)
	spanishWords = wordSet(
		"cómo", "como", "qué", "cuándo", "cuánto", "cuántas", "cuáles",
		"dónde", "oración", "oracion", "ablución", "rezar",
	)
	germanWords = wordSet(
		"wie", "warum", "wann", "welche", "wieviele", "gebet",
		"beten", "waschung", "gebetszeiten",
	)
)

// Detect classifies text into a supported locale bucket. Arabic script wins
// immediately if present at all; otherwise diacritic and lexicon checks run in
// French, Spanish, German order and unmatched input falls back to English.
// Pure and deterministic.
func Detect(text string) Tag {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return Arabic
		}
	}

	lower := strings.ToLower(text)
	words := tokenize(lower)

	if containsAny(lower, frenchChars) || matchesAny(words, frenchWords) {
		return French
	}
	if containsAny(lower, spanishChars) || matchesAny(words, spanishWords) {
		return Spanish
	}
	if containsAny(lower, germanChars) || matchesAny(words, germanWords) {
		return German
	}

	return English
}

func containsAny(s, chars string) bool {
	return strings.ContainsAny(s, chars)
}

func tokenize(lower string) []string {
	fields := strings.Fields(lower)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, "?!.,;:؟¿¡\"'()")
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

func matchesAny(words []string, set map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
