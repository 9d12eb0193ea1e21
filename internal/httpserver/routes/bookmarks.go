package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Route("/api/bookmarks", func(r chi.Router) {
		r.Get("/", handlers.ListBookmarks(d))
		r.Post("/", handlers.AddBookmark(d))
		r.Post("/toggle", handlers.ToggleBookmark(d))
		r.Get("/status", handlers.BookmarkStatus(d))
		r.Patch("/{id}", handlers.UpdateBookmark(d))
		r.Delete("/{id}", handlers.RemoveBookmark(d))
	})
}
