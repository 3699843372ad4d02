package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNilLimiterPassesThrough(t *testing.T) {
	var limiter *Limiter

	called := false
	handler := limiter.Middleware(
		func(r *http.Request) string { return "key" },
		func(w http.ResponseWriter, r *http.Request) { called = true },
	)

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest("POST", "/posts", nil))

	if !called {
		t.Error("nil limiter blocked the request")
	}
	if recorder.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", recorder.Code)
	}
}
