// Package chaterr maps arbitrary failure causes onto a small taxonomy of
// user-facing, localized error messages and transport status codes. Every
// failure the chat pipeline can produce resolves to a Kind here; the
// classifier never fails, so the endpoint can always respond.
package chaterr

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinel failures signaled by the model gateway.
var (
	// ErrAPIKeyMissing means the provider credential was absent at call time.
	// The service still starts without it; every chat request fails with this
	// until the deployment is fixed.
	ErrAPIKeyMissing = errors.New("generative AI api key is not configured")

	// ErrTimeout means the provider call lost the race against the request
	// deadline. The call itself is abandoned, not awaited.
	ErrTimeout = errors.New("timeout waiting for model response")

	// ErrEmptyResponse means the provider settled successfully but returned
	// empty or whitespace-only text. Treated as a failure so a blank answer
	// never renders as a 200.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// Kind is the classified failure category.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindQuota
	KindNetwork
	KindTimeout
	KindPolicy
	KindEmptyInput
	KindTooLong
	KindUnsafeInput
)

// Classify resolves an error to its Kind. Explicit gateway sentinels are
// checked first, then substring heuristics against the lowercased failure
// description, in the fixed priority order: configuration, quota, network,
// timeout, policy.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	switch {
	case errors.Is(err, ErrAPIKeyMissing):
		return KindConfiguration
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrEmptyResponse):
		return KindUnknown
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api_key") || strings.Contains(msg, "api key") ||
		strings.Contains(msg, "credential") || strings.Contains(msg, "key"):
		return KindConfiguration
	case strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		return KindQuota
	case strings.Contains(msg, "network") || strings.Contains(msg, "fetch") ||
		strings.Contains(msg, "connection"):
		return KindNetwork
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out") ||
		strings.Contains(msg, "deadline"):
		return KindTimeout
	case strings.Contains(msg, "safety") || strings.Contains(msg, "policy"):
		return KindPolicy
	}
	return KindUnknown
}

// Status maps a Kind to its HTTP status code.
func Status(k Kind) int {
	switch k {
	case KindConfiguration:
		return http.StatusInternalServerError
	case KindQuota:
		return http.StatusTooManyRequests
	case KindNetwork:
		return http.StatusServiceUnavailable
	case KindTimeout:
		return http.StatusRequestTimeout
	case KindPolicy, KindEmptyInput, KindTooLong, KindUnsafeInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
