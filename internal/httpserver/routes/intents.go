package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/httpserver/handlers"
	"github.com/wrenlabs/shortcuts/internal/httpserver/mw"
)

func init() { Register(registerIntents) }

func registerIntents(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger), mw.RateLimit(d.RateLimit)).Post("/intents/donate", handlers.Donate(d))
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/intents/{id}", handlers.GetInteraction(d))
}
