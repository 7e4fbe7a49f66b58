package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/holytrinity/portal/internal/httpserver/deps"
	"github.com/holytrinity/portal/internal/logger"
	"github.com/holytrinity/portal/internal/upstream"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// writeFetchError maps a gateway failure onto this endpoint's response:
// 401/403/404 pass through, everything else (including transport failures)
// becomes a 500. The client's next poll cycle is the retry mechanism.
func writeFetchError(d deps.Deps, w http.ResponseWriter, feed string, err error) {
	ue, ok := upstream.As(err)
	if !ok {
		d.Logger.Error("feed fetch failed",
			logger.String("feed", feed),
			logger.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch "+feed, err.Error())
		return
	}

	d.Logger.Warn("feed fetch failed",
		logger.String("feed", feed),
		logger.String("kind", ue.Kind.String()),
		logger.Error(err))
	writeError(w, ue.HTTPStatus(), fetchErrorMessage(ue.Kind, feed), ue.Message)
}

func fetchErrorMessage(kind upstream.Kind, feed string) string {
	switch kind {
	case upstream.Unauthorized:
		return "Invalid upstream credential"
	case upstream.Forbidden:
		return "Credential lacks permission to read " + feed
	case upstream.NotFound:
		return "Upstream target for " + feed + " not found"
	default:
		return "Failed to fetch " + feed
	}
}
