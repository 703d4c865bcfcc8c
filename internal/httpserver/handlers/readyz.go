package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready             bool `json:"ready"`
	RecordsRegistered int  `json:"records_registered"`
}

// Readyz reports readiness: the daemon is ready once the activity
// records for the shortcut catalog have been registered in the index.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.MemoryIndex.Count()
		ready := count > 0

		w.Header().Set("Content-Type", "application/json")
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready:             ready,
			RecordsRegistered: count,
		})
	}
}
