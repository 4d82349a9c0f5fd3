package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	Success(w, req, map[string]any{"id": 1}, "Users retrieved successfully")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Users retrieved successfully", body["message"])
	assert.Equal(t, map[string]any{"id": float64(1)}, body["data"])

	// A successful envelope never carries errors.
	_, hasErrors := body["errors"]
	assert.False(t, hasErrors)
}

func TestCreated_RoundTrip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()

	payload := map[string]any{"firstName": "Al", "lastName": "Ng"}
	Created(w, req, payload)

	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Created successfully", body["message"])
	assert.Equal(t, map[string]any{"firstName": "Al", "lastName": "Ng"}, body["data"])
}

func TestNoContent(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/test", nil)
	w := httptest.NewRecorder()

	NoContent(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		details any
	}{
		{"plain message", http.StatusNotFound, "User not found", nil},
		{
			"with details",
			http.StatusBadRequest,
			"Validation failed",
			[]map[string]any{{"field": "email", "message": "email is required"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			w := httptest.NewRecorder()

			Error(w, req, tc.status, tc.message, tc.details)

			assert.Equal(t, tc.status, w.Code)

			body := decodeEnvelope(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.message, body["message"])

			// A failure envelope never carries data.
			_, hasData := body["data"]
			assert.False(t, hasData)

			_, hasErrors := body["errors"]
			assert.Equal(t, tc.details != nil, hasErrors)
		})
	}
}
