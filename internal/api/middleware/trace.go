// Package middleware provides the HTTP middleware applied to every route:
// trace IDs, panic recovery, and request rate limiting.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/azmath1924/go-rest-starter/internal/api/shared"
)

// Trace adds a trace ID to the request context.
// This middleware should be applied early in the chain so that all
// subsequent handlers and error responses can correlate on the ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.Debug("request started",
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
