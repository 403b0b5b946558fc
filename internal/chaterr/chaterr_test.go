package chaterr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fadhakker-backend/internal/language"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"nil error", nil, KindUnknown},
		{"api key sentinel", ErrAPIKeyMissing, KindConfiguration},
		{"timeout sentinel", ErrTimeout, KindTimeout},
		{"empty response sentinel", ErrEmptyResponse, KindUnknown},
		{"wrapped timeout sentinel", fmt.Errorf("gateway: %w", ErrTimeout), KindTimeout},
		{"api key substring", errors.New("invalid API_KEY provided"), KindConfiguration},
		{"credential substring", errors.New("bad credential"), KindConfiguration},
		{"quota substring", errors.New("Quota exceeded for project"), KindQuota},
		{"limit substring", errors.New("rate limit reached"), KindQuota},
		{"network substring", errors.New("network unreachable"), KindNetwork},
		{"connection substring", errors.New("connection refused"), KindNetwork},
		{"timeout substring", errors.New("request timeout"), KindTimeout},
		{"context deadline", context.DeadlineExceeded, KindTimeout},
		{"safety substring", errors.New("blocked by safety filters"), KindPolicy},
		{"policy substring", errors.New("violates content policy"), KindPolicy},
		{"anything else", errors.New("internal provider failure"), KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err)
			if got != tc.expected {
				t.Errorf("Classify(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Configuration outranks quota when both signals are present.
	err := errors.New("quota check failed: api key invalid")
	if got := Classify(err); got != KindConfiguration {
		t.Errorf("expected configuration to win over quota, got %v", got)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindConfiguration, http.StatusInternalServerError},
		{KindQuota, http.StatusTooManyRequests},
		{KindNetwork, http.StatusServiceUnavailable},
		{KindTimeout, http.StatusRequestTimeout},
		{KindPolicy, http.StatusBadRequest},
		{KindEmptyInput, http.StatusBadRequest},
		{KindTooLong, http.StatusBadRequest},
		{KindUnsafeInput, http.StatusBadRequest},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := Status(tc.kind); got != tc.expected {
			t.Errorf("Status(%v) = %d, want %d", tc.kind, got, tc.expected)
		}
	}
}

func TestMessageNeverEmpty(t *testing.T) {
	kinds := []Kind{
		KindConfiguration, KindQuota, KindNetwork, KindTimeout,
		KindPolicy, KindEmptyInput, KindTooLong, KindUnsafeInput, KindUnknown,
	}

	for _, k := range kinds {
		for _, lang := range language.Supported() {
			if Message(k, lang) == "" {
				t.Errorf("Message(%v, %s) is empty", k, lang)
			}
		}
	}
}

func TestMessageFallsBackToEnglish(t *testing.T) {
	got := Message(KindTimeout, language.Tag("klingon"))
	want := Message(KindTimeout, language.English)
	if got != want {
		t.Errorf("unsupported tag should fall back to English: got %q, want %q", got, want)
	}

	if Message(Kind(99), language.English) != Message(KindUnknown, language.English) {
		t.Error("unknown kinds should fall back to the unknown-error text")
	}
}
