package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/httpserver/handlers"
)

func init() { Register(registerTabs) }

func registerTabs(r chi.Router, d deps.Deps) {
	r.Route("/api/tabs", func(r chi.Router) {
		r.Get("/", handlers.ListTabs(d))
		r.Post("/", handlers.CreateTab(d))
		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", handlers.CloseTab(d))
			r.Post("/activate", handlers.ActivateTab(d))
			r.Post("/navigate", handlers.NavigateTab(d))
			r.Post("/back", handlers.TabBack(d))
			r.Post("/forward", handlers.TabForward(d))
			r.Post("/reload", handlers.TabReload(d))
			r.Get("/capture", handlers.TabCapture(d))
		})
	})
}
