package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/domain"
	"github.com/glassbrowser/glassd/internal/httpserver/deps"
)

type bookmarkRequest struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Favicon string `json:"favicon"`
}

type bookmarkUpdateRequest struct {
	Title   *string `json:"title"`
	URL     *string `json:"url"`
	Favicon *string `json:"favicon"`
}

type bookmarkListResponse struct {
	Bookmarks []domain.Bookmark `json:"bookmarks"`
}

type toggleResponse struct {
	Bookmarks []domain.Bookmark `json:"bookmarks"`
	Added     bool              `json:"added"`
}

type bookmarkedResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Bookmarks.List(r.Context())
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarkListResponse{Bookmarks: list})
	}
}

func AddBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookmarkRequest
		if err := decode(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		list, err := d.Bookmarks.Add(r.Context(), req.Title, req.URL, req.Favicon)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, bookmarkListResponse{Bookmarks: list})
	}
}

func RemoveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Bookmarks.Remove(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarkListResponse{Bookmarks: list})
	}
}

func UpdateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookmarkUpdateRequest
		if err := decode(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		list, err := d.Bookmarks.Update(r.Context(), chi.URLParam(r, "id"), req.Title, req.URL, req.Favicon)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarkListResponse{Bookmarks: list})
	}
}

func ToggleBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookmarkRequest
		if err := decode(r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		list, added, err := d.Bookmarks.Toggle(r.Context(), req.Title, req.URL, req.Favicon)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, toggleResponse{Bookmarks: list, Added: added})
	}
}

func BookmarkStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if url == "" {
			writeError(w, d.Logger, &domain.ValidationError{Field: "url", Reason: "must not be empty"})
			return
		}

		bookmarked, err := d.Bookmarks.IsBookmarked(r.Context(), url)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarkedResponse{Bookmarked: bookmarked})
	}
}
