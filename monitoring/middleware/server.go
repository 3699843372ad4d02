package middleware

import (
	"net/http"

	"microblog/monitoring"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type ServerMiddleware struct {
	handler http.Handler
}

func (m *ServerMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	requestID := uuid.NewString()

	// increment total request counter
	monitoring.HttpRequestsTotal.WithLabelValues(path).Inc()

	// increment number of active connections
	monitoring.ActiveConnections.Inc()

	// begin timer to measure the requests duration
	timer := prometheus.NewTimer(monitoring.HttpRequestDuration.WithLabelValues(path))

	// complete processing request
	m.handler.ServeHTTP(w, r)

	// record request duration (post processing)
	timer.ObserveDuration()

	// decrement total number of active connections (post processing)
	monitoring.ActiveConnections.Dec()

	log.WithFields(log.Fields{
		"request_id": requestID,
		"method":     r.Method,
		"path":       path,
	}).Debug("request served")
}

func NewServerMiddleware(handlerToWrap http.Handler) *ServerMiddleware {
	return &ServerMiddleware{handlerToWrap}
}
