package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/glassbrowser/glassd/internal/httpserver/deps"
	"github.com/glassbrowser/glassd/internal/httpserver/handlers"
)

func init() { Register(registerAccount) }

func registerAccount(r chi.Router, d deps.Deps) {
	r.Route("/api/account", func(r chi.Router) {
		r.Get("/", handlers.CurrentUser(d))
		r.Post("/register", handlers.Register(d))
		r.Post("/login", handlers.Login(d))
		r.Post("/logout", handlers.Logout(d))
	})
}
