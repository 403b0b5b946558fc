package conversation

import (
	"time"

	"github.com/google/uuid"

	"fadhakker-backend/internal/models"
)

// Turn is one exchange unit in a conversation: a user question or an
// assistant answer. Turns are immutable once created and their insertion
// order defines the conversation history.
type Turn struct {
	ID        uuid.UUID
	Role      string // "user" or "assistant"
	Content   string
	CreatedAt time.Time
}

// Log is the ordered message log for one conversation. It is append-only;
// truncation happens only when reading a window, never in place.
type Log struct {
	turns []Turn
}

// FromMessages materializes a log from the wire-format history a caller
// submitted with its request. IDs and timestamps are assigned on entry.
func FromMessages(history []models.ChatMessage) *Log {
	l := &Log{}
	now := time.Now().UTC()
	for _, msg := range history {
		l.turns = append(l.turns, Turn{
			ID:        uuid.New(),
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: now,
		})
	}
	return l
}

// Append records a new turn and returns it.
func (l *Log) Append(role, content string) Turn {
	t := Turn{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	l.turns = append(l.turns, t)
	return t
}

// Len reports the number of turns recorded so far.
func (l *Log) Len() int {
	return len(l.turns)
}

// Window returns the trailing n turns in their original order. Older turns
// are dropped, never reordered. A non-positive n yields an empty window.
func (l *Log) Window(n int) []Turn {
	if n <= 0 {
		return nil
	}
	if len(l.turns) <= n {
		return append([]Turn(nil), l.turns...)
	}
	return append([]Turn(nil), l.turns[len(l.turns)-n:]...)
}

// Clear drops every recorded turn, ending the conversation.
func (l *Log) Clear() {
	l.turns = nil
}
