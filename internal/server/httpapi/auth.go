package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskmaster/internal/server/store"
	"taskmaster/internal/shared/models"
)

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleConnection is the unauthenticated store connectivity probe.
func (r *Router) handleConnection(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    http.StatusOK,
		"connected": r.gateway.Connected(),
	})
}

// handleKeyExchange trades a client access token for the server's API key.
func (r *Router) handleKeyExchange(w http.ResponseWriter, req *http.Request) {
	var body models.AccessTokenRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	key, err := r.broker.Exchange(req.Context(), body.AccessToken)
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			writeMessage(w, http.StatusServiceUnavailable, msgUnavailable)
			return
		}
		writeMessage(w, http.StatusForbidden, msgBadCredentials)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}
