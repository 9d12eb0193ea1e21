package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/httpserver/handlers"
)

func init() { Register(registerSync) }

func registerSync(r chi.Router, d deps.Deps) {
	r.Route("/api/sync", func(r chi.Router) {
		r.Get("/", handlers.GetSyncState(d))
		r.Put("/", handlers.SetSyncState(d))
		r.Post("/now", handlers.TriggerSync(d))
	})
}
