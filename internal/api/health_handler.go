package api

import (
	"net/http"
	"time"

	"github.com/azmath1924/go-rest-starter/internal/api/shared"
)

// healthResponse is the one body that deviates from the envelope's data
// field: the timestamp sits at the top level.
type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /api/health.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "API is healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
