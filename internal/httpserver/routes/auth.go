package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/httpserver/handlers"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	r.Route("/api/auth/flow", func(r chi.Router) {
		r.Post("/", handlers.BeginAuth(d))
		r.Get("/", handlers.AuthStatus(d))
		r.Delete("/", handlers.CancelAuth(d))
	})
}
