// Package ratelimit throttles the write path with a redis-backed counter
// window.
package ratelimit

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func New(client *redis.Client, limit int64, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: limit, window: window}
}

// Allow counts requests per key inside the current window. Redis errors fail
// open: a broken limiter must not take the write path down with it.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, "rl:"+key)
	pipe.Expire(ctx, "rl:"+key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Errorf("Error talking to rate limiter: %v", err)
		return true
	}
	return incr.Val() <= l.limit
}

// Middleware applies the limiter to a handler, keyed by keyFn. A nil *Limiter
// passes everything through, so the server works without redis configured.
func (l *Limiter) Middleware(keyFn func(*http.Request) string, next http.HandlerFunc) http.HandlerFunc {
	if l == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(r.Context(), keyFn(r)) {
			http.Error(w, `{"error": "rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
