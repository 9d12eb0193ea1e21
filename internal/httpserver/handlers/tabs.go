package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/httpserver/deps"
)

type tabListResponse struct {
	Tabs     []domain.Tab `json:"tabs"`
	ActiveID string       `json:"activeId,omitempty"`
}

type navigateRequest struct {
	URL string `json:"url"`
}

func ListTabs(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := tabListResponse{Tabs: d.Session.Tabs()}
		if active, ok := d.Session.ActiveTab(); ok {
			resp.ActiveID = active.ID
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func CreateTab(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// An empty body opens a blank tab.
		var req navigateRequest
		if r.ContentLength != 0 {
			if err := decode(r, &req); err != nil {
				writeError(w, d.Logger, err)
				return
			}
		}

		tab, err := d.Session.CreateTab(r.Context(), req.URL)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, tab)
	}
}

func ActivateTab(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Session.SetActiveTab(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func CloseTab(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Session.CloseTab(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func NavigateTab(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req navigateRequest
		if err := decode(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		tab, err := d.Session.Navigate(r.Context(), chi.URLParam(r, "id"), req.URL)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, tab)
	}
}

func TabBack(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Session.GoBack(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func TabForward(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Session.GoForward(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func TabReload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Session.Reload(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func TabCapture(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := d.Session.Capture(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if len(img) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		// The capture format depends on the configured quality (JPEG
		// below 100, PNG at 100), so sniff rather than hardcode.
		w.Header().Set("Content-Type", http.DetectContentType(img))
		_, _ = w.Write(img)
	}
}
