// Package shared holds the response envelope and request-scoped context
// helpers used by every handler.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response is the uniform shape of every JSON body sent to clients:
// success with optional data, or failure with optional structured errors.
// A successful response never carries errors and a failed response never
// carries data.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path,
			"trace_id", GetTraceID(r.Context()))
	}
}

// Success writes a 200 envelope with the given data and message.
func Success(w http.ResponseWriter, r *http.Request, data any, message string) {
	RespondWithJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 envelope for a newly created resource.
func Created(w http.ResponseWriter, r *http.Request, data any) {
	RespondWithJSON(w, r, http.StatusCreated, Response{
		Success: true,
		Message: "Created successfully",
		Data:    data,
	})
}

// NoContent writes a 204 response. Per RFC 9110 a 204 carries no body, so
// this is the one case where no envelope is serialized.
func NoContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes a failure envelope. It is invoked through the error
// responder, never directly by handlers.
func Error(w http.ResponseWriter, r *http.Request, status int, message string, details any) {
	RespondWithJSON(w, r, status, Response{
		Success: false,
		Message: message,
		Errors:  details,
	})
}
