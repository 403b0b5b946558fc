package prompt

import (
	"strings"

	"fadhakker-backend/internal/conversation"
	"fadhakker-backend/internal/language"
)

// maxHistoryTurns bounds how many prior turns are rendered into a prompt,
// independent of how many the caller hands over.
const maxHistoryTurns = 8

// Generation parameters tuned for bounded, deterministic-ish educational
// answers rather than creative variance.
const (
	Temperature     float32 = 0.7
	TopP            float32 = 0.8
	TopK            int32   = 40
	MaxOutputTokens int32   = 1024
)

// Request is the fully assembled model input for one gateway invocation.
// It has no identity beyond that single call and is never persisted.
type Request struct {
	Text            string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// Compose assembles the prompt for one question: the fixed domain-knowledge
// block, a bounded rendering of prior turns with language-appropriate role
// labels, the language-specific instruction block, and the trimmed question.
// Composition is pure string assembly and cannot fail.
func Compose(history []conversation.Turn, question string, lang language.Tag) Request {
	var b strings.Builder

	b.WriteString(PrayerContext)
	b.WriteString("\n")

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	if len(history) > 0 {
		labels := labelsFor(lang)
		b.WriteString("\n")
		b.WriteString(headerFor(historyHeaders, lang))
		b.WriteString("\n")
		for _, turn := range history {
			label := labels.user
			if turn.Role == "assistant" {
				label = labels.assistant
			}
			b.WriteString(label)
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(headerFor(questionHeaders, lang))
	b.WriteString(" ")
	b.WriteString(strings.TrimSpace(question))
	b.WriteString("\n\n")
	b.WriteString(Instructions(lang))

	return Request{
		Text:            b.String(),
		Temperature:     Temperature,
		TopP:            TopP,
		TopK:            TopK,
		MaxOutputTokens: MaxOutputTokens,
	}
}
