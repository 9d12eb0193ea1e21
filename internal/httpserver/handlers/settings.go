package handlers

import (
	"net/http"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/settings"
)

func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Settings.Current())
	}
}

func UpdateSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var partial domain.Settings
		if err := decode(r, &partial); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		merged, err := d.Settings.Update(r.Context(), partial)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, merged)
	}
}

// GetAppearance returns the derived presentation values for the current
// settings. prefersDark mirrors the OS-level preference of the caller.
func GetAppearance(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefersDark := r.URL.Query().Get("prefersDark") != "false"
		writeJSON(w, http.StatusOK, settings.Derive(d.Settings.Current(), prefersDark))
	}
}
