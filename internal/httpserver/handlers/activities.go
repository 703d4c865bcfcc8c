package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wrenlabs/shortcuts/internal/activity"
	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/logger"
)

type activitiesResponse struct {
	Query   string            `json:"query,omitempty"`
	Results []activity.Record `json:"results"`
}

// SearchActivities queries the in-memory activity index. Without a
// query it returns every registered record, ranked by usage.
func SearchActivities(d deps.Deps) http.HandlerFunc {
	memIndex := d.MemoryIndex

	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		var results []activity.Record
		if query == "" {
			results = memIndex.All()
		} else {
			d.Logger.Debug("activity search",
				logger.String("query", query))
			results = memIndex.Search(query)
		}
		if results == nil {
			results = []activity.Record{}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(activitiesResponse{
			Query:   query,
			Results: results,
		})
	}
}
