package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/logger"
	redisstore "github.com/wrenlabs/shortcuts/internal/store/redis"
)

// GetInteraction looks up one journaled donation by interaction ID.
func GetInteraction(d deps.Deps) http.HandlerFunc {
	var store *redisstore.Store
	if d.RedisClient != nil {
		store = redisstore.NewStore(d.RedisClient)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			http.Error(w, "journal unavailable", http.StatusServiceUnavailable)
			return
		}

		id := chi.URLParam(r, "id")

		interaction, err := store.GetInteraction(r.Context(), id)
		if err != nil {
			d.Logger.Debug("interaction lookup failed",
				logger.String("id", id),
				logger.Error(err))
			http.Error(w, "interaction not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(interaction)
	}
}
