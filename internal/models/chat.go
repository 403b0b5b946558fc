package models

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. Only the trailing
// window of History is used; older entries are ignored.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

// ChatResponse is the success reply from the assistant. Callers must treat
// every field except Response as optional.
type ChatResponse struct {
	Response         string `json:"response"`
	Source           string `json:"source,omitempty"`
	Timestamp        string `json:"timestamp"`
	DetectedLanguage string `json:"detectedLanguage,omitempty"`
}

// ChatError is the failure reply, paired with an HTTP status code. The
// message is localized; the original diagnostic stays in the server log.
type ChatError struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is returned by the chat health probe. It reports process
// liveness only and does not verify provider reachability.
type HealthResponse struct {
	Message            string            `json:"message"`
	Status             string            `json:"status"`
	SupportedLanguages []string          `json:"supportedLanguages"`
	Endpoints          map[string]string `json:"endpoints"`
	Timestamp          string            `json:"timestamp"`
}
