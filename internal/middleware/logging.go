// internal/middleware/logging.go

// Package middleware holds the request pipeline: correlation-id assignment
// and the audit/recovery wrapper every request passes through.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/busride/lobby-service/internal/identity"
)

// RequestIDHeader carries the correlation id on requests and responses.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the correlation id assigned to this request,
// or "" outside the pipeline.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID ensures every request has a correlation id. An inbound
// X-Request-ID is honored, otherwise a fresh UUID is assigned; either way the
// id is stored in the context and echoed on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written downstream so the audit
// line can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Logging emits one structured audit line per request and converts panics
// into an opaque 500 so no downstream failure escapes the pipeline. It sits
// inside the identity middleware so the audit line can include the player.
func Logging(logger *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				if rv := recover(); rv != nil {
					logger.WithFields(logrus.Fields{
						"panic":      rv,
						"request_id": RequestIDFromContext(r.Context()),
					}).Error("unhandled panic in request handler")
					http.Error(rec, "internal server error", http.StatusInternalServerError)
				}

				fields := logrus.Fields{
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     rec.status,
					"duration":   time.Since(start),
					"remote":     r.RemoteAddr,
					"user_agent": r.UserAgent(),
					"url":        fullURL(r),
					"request_id": RequestIDFromContext(r.Context()),
				}
				if p := identity.FromContext(r.Context()); p != nil {
					fields["player_id"] = p.ID
				}
				logger.WithFields(fields).Info("HTTP Request")
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

func fullURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
