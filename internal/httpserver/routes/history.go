package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/httpserver/handlers"
)

func init() { Register(registerHistory) }

func registerHistory(r chi.Router, d deps.Deps) {
	r.Route("/api/history", func(r chi.Router) {
		r.Get("/", handlers.ListHistory(d))
		r.Delete("/", handlers.ClearHistory(d))
	})
}
