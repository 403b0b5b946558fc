package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fadhakker-backend/internal/chaterr"
	"fadhakker-backend/internal/conversation"
	"fadhakker-backend/internal/format"
	"fadhakker-backend/internal/language"
	"fadhakker-backend/internal/models"
	"fadhakker-backend/internal/prompt"
	"fadhakker-backend/internal/security"
)

// chatGateway is the single outbound dependency of the endpoint.
type chatGateway interface {
	Answer(ctx context.Context, req prompt.Request) (string, error)
}

// sourceLabels is the localized attribution line attached to successful
// answers.
var sourceLabels = map[language.Tag]string{
	language.Arabic:  "مساعد ذكي متخصص في تعليم الصلاة",
	language.English: "Smart assistant specialized in prayer education",
	language.French:  "Assistant intelligent spécialisé dans l'enseignement de la prière",
	language.Spanish: "Asistente inteligente especializado en la enseñanza de la oración",
	language.German:  "Intelligenter Assistent für den Gebetsunterricht",
}

type ChatHandler struct {
	gateway       chatGateway
	historyWindow int
	maxChars      int
}

func NewChatHandler(gateway chatGateway, historyWindow, maxChars int) *ChatHandler {
	return &ChatHandler{
		gateway:       gateway,
		historyWindow: historyWindow,
		maxChars:      maxChars,
	}
}

// Ask handles POST /api/chat. The pipeline is strictly sequential:
// validate, detect language, compose the prompt, invoke the model, then
// either format the answer or classify the failure. Exactly one response is
// written per request.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatError(w, chaterr.Status(chaterr.KindEmptyInput), chaterr.Message(chaterr.KindEmptyInput, language.English))
		return
	}

	lang := language.Detect(req.Message)

	// Validation short-circuits before any provider work.
	if security.Suspicious(req.Message) {
		writeChatError(w, chaterr.Status(chaterr.KindUnsafeInput), chaterr.Message(chaterr.KindUnsafeInput, lang))
		return
	}
	message := security.Sanitize(req.Message)
	if message == "" {
		writeChatError(w, chaterr.Status(chaterr.KindEmptyInput), chaterr.Message(chaterr.KindEmptyInput, lang))
		return
	}
	if len([]rune(message)) > h.maxChars {
		writeChatError(w, chaterr.Status(chaterr.KindTooLong), chaterr.Message(chaterr.KindTooLong, lang))
		return
	}

	history := conversation.FromMessages(req.History).Window(h.historyWindow)
	promptReq := prompt.Compose(history, message, lang)

	rawText, err := h.gateway.Answer(r.Context(), promptReq)
	if err != nil {
		// Full diagnostic stays server-side; the caller gets localized text.
		log.Printf("chat request failed (request_id=%s): %v", r.Header.Get("X-Request-ID"), err)
		kind := chaterr.Classify(err)
		writeChatError(w, chaterr.Status(kind), chaterr.Message(kind, lang))
		return
	}

	// Answers are per-request and must never be cached by intermediaries.
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response:         format.Text(rawText),
		Source:           sourceLabel(lang),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		DetectedLanguage: string(lang),
	})
}

// Health handles GET /api/chat. It reports that the process is up; provider
// reachability is not checked.
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	supported := make([]string, 0, len(language.Supported()))
	for _, tag := range language.Supported() {
		supported = append(supported, string(tag))
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{
		Message:            "المساعد الذكي للصلاة جاهز للخدمة",
		Status:             "active",
		SupportedLanguages: supported,
		Endpoints: map[string]string{
			"chat":   "POST /api/chat",
			"health": "GET /api/chat",
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func sourceLabel(lang language.Tag) string {
	if s, ok := sourceLabels[lang]; ok {
		return s
	}
	return sourceLabels[language.English]
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeChatError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ChatError{
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
