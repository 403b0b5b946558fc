package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"fadhakker-backend/internal/chaterr"
	"fadhakker-backend/internal/prompt"
)

// GeminiService owns the single outbound call per turn to the Google
// generative model. It performs no retries: resubmission is the caller's
// decision, which keeps billable calls and duplicate answers off the table.
type GeminiService struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewGeminiService creates the gateway. An empty API key is not a
// construction error: the service must still start and answer health probes,
// so the missing credential surfaces per request instead.
func NewGeminiService(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiService, error) {
	s := &GeminiService{
		modelName: modelName,
		timeout:   timeout,
	}
	if apiKey == "" {
		return s, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	s.client = client
	return s, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Ready reports whether a provider credential was configured.
func (s *GeminiService) Ready() bool {
	return s.client != nil
}

// Answer dispatches one prompt to the model and returns the raw text. The
// call races the configured deadline; empty or whitespace-only output is a
// failure, never a successful empty answer.
func (s *GeminiService) Answer(ctx context.Context, req prompt.Request) (string, error) {
	if s.client == nil {
		return "", chaterr.ErrAPIKeyMissing
	}

	model := s.client.GenerativeModel(s.modelName)
	model.SetTemperature(req.Temperature)
	model.SetTopP(req.TopP)
	model.SetTopK(req.TopK)
	model.SetMaxOutputTokens(req.MaxOutputTokens)

	text, err := generateWithTimeout(ctx, s.timeout, func(ctx context.Context) (string, error) {
		resp, err := model.GenerateContent(ctx, genai.Text(req.Text))
		if err != nil {
			return "", fmt.Errorf("gemini api error: %w", err)
		}
		return extractText(resp), nil
	})
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", chaterr.ErrEmptyResponse
	}
	return text, nil
}

// generateWithTimeout races call against a wall-clock deadline. The deadline
// also cancels the underlying transport, and the result channel is buffered
// so a late-arriving settlement is discarded instead of leaking a goroutine
// or producing a second response.
func generateWithTimeout(ctx context.Context, timeout time.Duration, call func(context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		text, err := call(ctx)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", chaterr.ErrTimeout
		}
		return "", ctx.Err()
	case r := <-done:
		return r.text, r.err
	}
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
