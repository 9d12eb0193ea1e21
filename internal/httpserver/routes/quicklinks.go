package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/httpserver/handlers"
)

func init() { Register(registerQuickLinks) }

func registerQuickLinks(r chi.Router, d deps.Deps) {
	r.Route("/api/quicklinks", func(r chi.Router) {
		r.Get("/", handlers.ListQuickLinks(d))
		r.Post("/", handlers.AddQuickLink(d))
		r.Delete("/{index}", handlers.DeleteQuickLink(d))
	})
}
