package handlers

import (
	"net/http"

	"github.com/glassbrowser/glassd/internal/httpserver/deps"
)

type syncStateResponse struct {
	Enabled    bool `json:"enabled"`
	Configured bool `json:"configured"`
}

type syncStateRequest struct {
	Enabled bool `json:"enabled"`
}

func GetSyncState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enabled, err := d.Store.SyncEnabled(r.Context())
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, syncStateResponse{Enabled: enabled, Configured: d.SyncTrigger != nil})
	}
}

func SetSyncState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req syncStateRequest
		if err := decode(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := d.Store.SetSyncEnabled(r.Context(), req.Enabled); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, syncStateResponse{Enabled: req.Enabled, Configured: d.SyncTrigger != nil})
	}
}

// TriggerSync requests an immediate mirror pass.
func TriggerSync(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.SyncTrigger == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "sync is not configured"})
			return
		}

		select {
		case d.SyncTrigger <- struct{}{}:
		default:
			// A pass is already queued.
		}
		w.WriteHeader(http.StatusAccepted)
	}
}
