package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/httpserver/deps"
)

type quickLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Color string `json:"color"`
}

type quickLinkListResponse struct {
	QuickLinks []domain.QuickLink `json:"quickLinks"`
}

func ListQuickLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, quickLinkListResponse{QuickLinks: d.QuickLinks.Resolve(r.Context())})
	}
}

func AddQuickLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quickLinkRequest
		if err := decode(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		links, err := d.QuickLinks.Add(r.Context(), req.Title, req.URL, req.Color)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, quickLinkListResponse{QuickLinks: links})
	}
}

func DeleteQuickLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			writeError(w, d.Logger, &domain.ValidationError{Field: "index", Reason: "must be an integer"})
			return
		}

		links, err := d.QuickLinks.Delete(r.Context(), index)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, quickLinkListResponse{QuickLinks: links})
	}
}
