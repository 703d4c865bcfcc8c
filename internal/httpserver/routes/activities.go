package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/httpserver/handlers"
	"github.com/wrenlabs/shortcuts/internal/httpserver/mw"
)

func init() { Register(registerActivities) }

func registerActivities(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/activities", handlers.SearchActivities(d))
}
