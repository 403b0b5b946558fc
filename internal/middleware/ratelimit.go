package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"fadhakker-backend/internal/chaterr"
	"fadhakker-backend/internal/language"
	"fadhakker-backend/internal/models"
)

// RateStore counts requests per client key over a fixed window. It is the
// only cross-request shared mutable state in the service, so implementations
// must make the increment-and-compare atomic per key. The interface exists so
// the counters can later move to a shared external store without touching
// callers.
type RateStore interface {
	Check(ctx context.Context, key string) (allowed bool, remaining int, err error)
}

type visitor struct {
	count     int
	resetTime time.Time
}

// MemoryStore is an in-process fixed-window counter table.
type MemoryStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	s := &MemoryStore{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}

	// Cleanup goroutine
	go func() {
		for {
			time.Sleep(window)
			s.mu.Lock()
			for key, v := range s.visitors {
				if s.now().After(v.resetTime) {
					delete(s.visitors, key)
				}
			}
			s.mu.Unlock()
		}
	}()

	return s
}

// Check atomically increments the counter for key and compares it against the
// limit. Expired windows reset on first touch.
func (s *MemoryStore) Check(ctx context.Context, key string) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	v, exists := s.visitors[key]
	if !exists || now.After(v.resetTime) {
		s.visitors[key] = &visitor{count: 1, resetTime: now.Add(s.window)}
		return true, s.limit - 1, nil
	}

	v.count++
	if v.count > s.limit {
		return false, 0, nil
	}
	return true, s.limit - v.count, nil
}

// RateLimiter applies a RateStore per client IP.
type RateLimiter struct {
	store RateStore
}

func NewRateLimiter(store RateStore) *RateLimiter {
	return &RateLimiter{store: store}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, err := rl.store.Check(r.Context(), ClientIP(r))
		if err != nil {
			// Counter store trouble must not take the service down with it.
			log.Printf("rate limit store error: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			writeLimited(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeLimited(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	json.NewEncoder(w).Encode(models.ChatError{
		Error:     chaterr.Message(chaterr.KindQuota, language.English),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ClientIP resolves the caller's address from proxy headers, falling back to
// the connection's remote address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return r.RemoteAddr
}
