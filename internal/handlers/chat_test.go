package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fadhakker-backend/internal/chaterr"
	"fadhakker-backend/internal/models"
	"fadhakker-backend/internal/prompt"
)

// fakeGateway records invocations and returns a scripted settlement.
type fakeGateway struct {
	calls   int
	lastReq prompt.Request
	text    string
	err     error
	delay   time.Duration
}

func (f *fakeGateway) Answer(ctx context.Context, req prompt.Request) (string, error) {
	f.calls++
	f.lastReq = req
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", chaterr.ErrTimeout
		}
	}
	return f.text, f.err
}

func postChat(t *testing.T, h *ChatHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Ask(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ChatError {
	t.Helper()
	var out models.ChatError
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return out
}

func TestAskEmptyMessage(t *testing.T) {
	gw := &fakeGateway{text: "unused"}
	h := NewChatHandler(gw, 8, 1000)

	rr := postChat(t, h, models.ChatRequest{Message: ""})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
	if gw.calls != 0 {
		t.Errorf("gateway was called %d times for invalid input, want 0", gw.calls)
	}
	body := decodeError(t, rr)
	if body.Error == "" || body.Timestamp == "" {
		t.Errorf("error body incomplete: %+v", body)
	}
}

func TestAskWhitespaceOnlyMessage(t *testing.T) {
	gw := &fakeGateway{}
	h := NewChatHandler(gw, 8, 1000)

	rr := postChat(t, h, models.ChatRequest{Message: "   \n\t "})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
	if gw.calls != 0 {
		t.Error("gateway must not be called for whitespace-only input")
	}
}

func TestAskMessageTooLong(t *testing.T) {
	gw := &fakeGateway{}
	h := NewChatHandler(gw, 8, 1000)

	rr := postChat(t, h, models.ChatRequest{Message: strings.Repeat("س", 1001)})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
	if gw.calls != 0 {
		t.Error("gateway must not be called for over-long input")
	}
	body := decodeError(t, rr)
	if !strings.Contains(body.Error, "1000") {
		t.Errorf("error should mention the length limit, got %q", body.Error)
	}
}

func TestAskMessageAtLimitIsAccepted(t *testing.T) {
	gw := &fakeGateway{text: "joined answer"}
	h := NewChatHandler(gw, 8, 1000)

	rr := postChat(t, h, models.ChatRequest{Message: strings.Repeat("a", 1000)})

	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rr.Code)
	}
	if gw.calls != 1 {
		t.Errorf("gateway calls = %d, want 1", gw.calls)
	}
}

func TestAskSuspiciousMessageRejected(t *testing.T) {
	gw := &fakeGateway{}
	h := NewChatHandler(gw, 8, 1000)

	rr := postChat(t, h, models.ChatRequest{Message: "<script>alert(1)</script>"})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
	if gw.calls != 0 {
		t.Error("gateway must not see suspicious input")
	}
}

func TestAskMalformedBody(t *testing.T) {
	gw := &fakeGateway{}
	h := NewChatHandler(gw, 8, 1000)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Ask(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
	if gw.calls != 0 {
		t.Error("gateway must not be called for malformed bodies")
	}
}

func TestAskArabicQuestionSucceeds(t *testing.T) {
	gw := &fakeGateway{text: "الوضوء له فرائض وسنن"}
	h := NewChatHandler(gw, 8, 1000)

	rr := postChat(t, h, models.ChatRequest{Message: "كيف أتوضأ؟"})

	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rr.Code)
	}
	if gw.calls != 1 {
		t.Fatalf("gateway calls = %d, want 1", gw.calls)
	}

	var body models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.DetectedLanguage != "arabic" {
		t.Errorf("detectedLanguage = %q, want arabic", body.DetectedLanguage)
	}
	if body.Response != "الوضوء له فرائض وسنن" {
		t.Errorf("unexpected response text %q", body.Response)
	}
	if body.Source == "" {
		t.Error("source label must be set on success")
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp is not RFC3339: %q", body.Timestamp)
	}

	if got := rr.Header().Get("Cache-Control"); got != "no-cache, no-store, must-revalidate" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := rr.Header().Get("Pragma"); got != "no-cache" {
		t.Errorf("Pragma = %q", got)
	}
}

func TestAskFormatsAnswer(t *testing.T) {
	gw := &fakeGateway{text: "steps:\n\n\n- intention\n1) takbir"}
	h := NewChatHandler(gw, 8, 1000)

	rr := postChat(t, h, models.ChatRequest{Message: "how do I pray?"})

	var body models.ChatResponse
	json.NewDecoder(rr.Body).Decode(&body)
	want := "steps:\n\n• intention\n1. takbir"
	if body.Response != want {
		t.Errorf("Response = %q, want %q", body.Response, want)
	}
}

func TestAskHistoryWindowForwarded(t *testing.T) {
	gw := &fakeGateway{text: "answer"}
	h := NewChatHandler(gw, 8, 1000)

	var history []models.ChatMessage
	for i := 0; i < 10; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, models.ChatMessage{Role: role, Content: "hist-" + strings.Repeat("x", i+1)})
	}

	rr := postChat(t, h, models.ChatRequest{Message: "next question", History: history})
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rr.Code)
	}

	// Oldest two entries fall outside the window of 8.
	if strings.Contains(gw.lastReq.Text, "hist-x\n") || strings.Contains(gw.lastReq.Text, "hist-xx\n") {
		t.Error("prompt contains history entries older than the window")
	}
	for i := 2; i < 10; i++ {
		marker := "hist-" + strings.Repeat("x", i+1) + "\n"
		if !strings.Contains(gw.lastReq.Text, marker) {
			t.Errorf("prompt is missing history entry %d", i)
		}
	}
}

func TestAskGatewayFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"quota error", errors.New("429: quota exceeded for this project"), http.StatusTooManyRequests},
		{"timeout sentinel", chaterr.ErrTimeout, http.StatusRequestTimeout},
		{"empty response sentinel", chaterr.ErrEmptyResponse, http.StatusInternalServerError},
		{"missing api key", chaterr.ErrAPIKeyMissing, http.StatusInternalServerError},
		{"network error", errors.New("connection reset by peer"), http.StatusServiceUnavailable},
		{"safety rejection", errors.New("candidate blocked due to safety"), http.StatusBadRequest},
		{"unknown error", errors.New("something odd happened"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{err: tc.err}
			h := NewChatHandler(gw, 8, 1000)

			rr := postChat(t, h, models.ChatRequest{Message: "a valid question"})

			if rr.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d", rr.Code, tc.wantStatus)
			}
			body := decodeError(t, rr)
			if body.Error == "" {
				t.Error("localized error message must not be empty")
			}
			if strings.Contains(body.Error, tc.err.Error()) && tc.name == "unknown error" {
				t.Error("raw diagnostic must not leak to the caller")
			}
		})
	}
}

func TestAskQuotaErrorLocalizedInArabic(t *testing.T) {
	gw := &fakeGateway{err: errors.New("quota exceeded")}
	h := NewChatHandler(gw, 8, 1000)

	rr := postChat(t, h, models.ChatRequest{Message: "ما هي أركان الصلاة؟"})

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status %d, want 429", rr.Code)
	}
	body := decodeError(t, rr)
	if !strings.Contains(body.Error, "تجاوز") {
		t.Errorf("expected Arabic quota message, got %q", body.Error)
	}
}

func TestAskTimeout(t *testing.T) {
	// Gateway never settles on its own; the request context deadline decides.
	gw := &fakeGateway{delay: 5 * time.Second}
	h := NewChatHandler(gw, 8, 1000)

	raw, _ := json.Marshal(models.ChatRequest{Message: "slow question"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(raw))
	ctx, cancel := context.WithTimeout(req.Context(), 50*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	start := time.Now()
	rr := httptest.NewRecorder()
	h.Ask(rr, req)
	elapsed := time.Since(start)

	if rr.Code != http.StatusRequestTimeout {
		t.Fatalf("status %d, want 408", rr.Code)
	}
	if elapsed > time.Second {
		t.Errorf("response took %v, should arrive near the 50ms deadline", elapsed)
	}
}

func TestHealthProbe(t *testing.T) {
	h := NewChatHandler(&fakeGateway{}, 8, 1000)

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rr.Code)
	}

	var body models.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode health body: %v", err)
	}
	if body.Status != "active" {
		t.Errorf("status = %q, want active", body.Status)
	}
	if len(body.SupportedLanguages) == 0 {
		t.Error("supportedLanguages must not be empty")
	}
	if body.Endpoints["chat"] == "" {
		t.Error("endpoints must advertise the chat route")
	}
	if body.Timestamp == "" {
		t.Error("timestamp must be set")
	}
}
