package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/httpserver/handlers"
	"github.com/wrenlabs/shortcuts/internal/httpserver/mw"
)

func init() { Register(registerShortcuts) }

func registerShortcuts(r chi.Router, d deps.Deps) {
	host := mw.EnforceHost(d.AllowedHosts, d.Logger)

	r.With(host).Get("/shortcuts", handlers.ListShortcuts(d))
	r.With(host).Get("/shortcuts/{action}/activity", handlers.GetActivity(d))
	r.With(host, mw.RateLimit(d.RateLimit)).Post("/shortcuts/{action}/perform", handlers.Perform(d))
}
