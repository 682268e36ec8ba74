package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_GeneralEndpoints(t *testing.T) {
	// generalRPM falls back to 100, so a burst of 10 passes.
	mw := NewRateLimitMiddleware(0, 1)

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestRateLimitMiddleware_AuthBucketIsStricter(t *testing.T) {
	mw := NewRateLimitMiddleware(100, 1)

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Burst of 1: the first login attempt passes, the immediate second
	// one is limited.
	req1 := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, req1)
	assert.Equal(t, http.StatusOK, rec1.Code)

	req2 := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
	assert.Equal(t, "60", rec2.Header().Get("Retry-After"))
	assert.Equal(t, "application/json", rec2.Header().Get("Content-Type"))
	assert.Contains(t, rec2.Body.String(), "RATE_LIMITED")
}

func TestRateLimitMiddleware_SeparateClientsSeparateBuckets(t *testing.T) {
	mw := NewRateLimitMiddleware(100, 1)

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	first.Header.Set("X-Forwarded-For", "203.0.113.10")
	recFirst := httptest.NewRecorder()
	handler.ServeHTTP(recFirst, first)
	assert.Equal(t, http.StatusOK, recFirst.Code)

	second := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	second.Header.Set("X-Forwarded-For", "203.0.113.20")
	recSecond := httptest.NewRecorder()
	handler.ServeHTTP(recSecond, second)
	assert.Equal(t, http.StatusOK, recSecond.Code)
}

func TestRateLimitMiddleware_Defaults(t *testing.T) {
	mw := NewRateLimitMiddleware(-1, 0)
	assert.Equal(t, 100, mw.generalRPM)
	assert.Equal(t, 10, mw.authRPM)
}
