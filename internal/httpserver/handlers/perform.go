package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/logger"
	"github.com/wrenlabs/shortcuts/internal/metrics"
	"github.com/wrenlabs/shortcuts/internal/shortcut"
	redisstore "github.com/wrenlabs/shortcuts/internal/store/redis"
)

type performResponse struct {
	Action     string `json:"action"`
	Identifier string `json:"identifier"`
	Status     string `json:"status"`
}

// Perform dispatches one shortcut action to the browser collaborators.
// Dispatch failures are absorbed by the dispatcher, so the endpoint
// answers 202 for every known action.
func Perform(d deps.Deps) http.HandlerFunc {
	var store *redisstore.Store
	if d.RedisClient != nil {
		store = redisstore.NewStore(d.RedisClient)
	}
	memIndex := d.MemoryIndex

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		slug := chi.URLParam(r, "action")

		action, err := shortcut.ParseAction(slug)
		if err != nil {
			d.Logger.Debug("unknown shortcut action requested",
				logger.String("action", slug))
			http.Error(w, "unknown shortcut action", http.StatusNotFound)
			return
		}

		d.Logger.Info("performing shortcut",
			logger.String("action", action.String()))

		started := time.Now()
		d.Dispatcher.Perform(ctx, action)
		metrics.RecordPerform(action.String(), time.Since(started))

		// Usage counters feed prediction ranking (best effort).
		if store != nil {
			_ = store.IncrementUsage(ctx, action)
		}
		memIndex.IncrementCounter(action)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(performResponse{
			Action:     action.String(),
			Identifier: action.Identifier(),
			Status:     "dispatched",
		})
	}
}
