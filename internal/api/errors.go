package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/azmath1924/go-rest-starter/internal/apperr"
	"github.com/azmath1924/go-rest-starter/internal/api/shared"
	"github.com/azmath1924/go-rest-starter/internal/store"
)

// ErrorResponder is the single sink for handler failures. It classifies an
// error into a status code and a client-safe message, logs the details
// server-side, and writes exactly one failure envelope. It never panics.
type ErrorResponder struct {
	// exposeInternals allows the raw error and stack trace of unclassified
	// failures into the response body. Always false in production.
	exposeInternals bool
	logger          *slog.Logger
}

// NewErrorResponder creates an ErrorResponder. exposeInternals must be false
// in a production configuration.
func NewErrorResponder(exposeInternals bool, logger *slog.Logger) *ErrorResponder {
	return &ErrorResponder{
		exposeInternals: exposeInternals,
		logger:          logger.With("component", "error_responder"),
	}
}

// internalDetail is the debug payload attached to unclassified errors when
// internals are exposed. It is never combined with validation errors.
type internalDetail struct {
	Error string `json:"error"`
	Stack string `json:"stack"`
}

// Respond maps err to a response and writes it.
//
// Classification order: an apperr.Error dictates its own status, message,
// and field errors; store sentinels map to 404/409 with fixed messages;
// anything else is an unclassified defect reported as a generic 500, with
// the raw error and stack included only outside production.
func (er *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"
	var details any

	var appErr *apperr.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		message = appErr.Message
		if len(appErr.Fields) > 0 {
			details = appErr.Fields
		}
	case errors.Is(err, store.ErrUserNotFound):
		status = http.StatusNotFound
		message = "User not found"
	case store.IsNotFoundError(err):
		status = http.StatusNotFound
		message = "Resource not found"
	case errors.Is(err, store.ErrEmailExists):
		status = http.StatusConflict
		message = "User with this email already exists"
	case store.IsDuplicateError(err):
		status = http.StatusConflict
		message = "Resource already exists"
	}

	logAttrs := []any{
		"status_code", status,
		"error", err.Error(),
		"error_type", fmt.Sprintf("%T", err),
		"path", r.URL.Path,
		"method", r.Method,
		"trace_id", shared.GetTraceID(r.Context()),
	}

	if status >= http.StatusInternalServerError {
		// Unclassified errors indicate a defect: full detail server-side,
		// generic message to the client.
		er.logger.Error("unhandled error", logAttrs...)
		if er.exposeInternals && details == nil {
			details = internalDetail{
				Error: err.Error(),
				Stack: string(debug.Stack()),
			}
		}
	} else {
		er.logger.Debug("request failed", logAttrs...)
	}

	shared.Error(w, r, status, message, details)
}

// RouteNotFound handles requests that match no registered route (or no
// method on a matched path, mirroring a catch-all route table).
func (er *ErrorResponder) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path)
	shared.Error(w, r, http.StatusNotFound, message, nil)
}
