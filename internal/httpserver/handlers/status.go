package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	redisstore "github.com/wrenlabs/shortcuts/internal/store/redis"
)

type componentStatus struct {
	OK                bool   `json:"ok"`
	RecordsRegistered *int   `json:"records_registered,omitempty"`
	JournalEntries    *int64 `json:"journal_entries,omitempty"`
	LastReload        string `json:"last_reload,omitempty"`
	Mode              string `json:"mode,omitempty"`
	Impact            string `json:"impact,omitempty"`
	Error             string `json:"error,omitempty"`
}

type statusResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Status reports the state of the daemon's moving parts: the activity
// index and the Redis journal backend.
func Status(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		recordCount := d.MemoryIndex.Count()
		lastReload := d.MemoryIndex.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"index": {
				OK:                recordCount > 0,
				RecordsRegistered: &recordCount,
				LastReload:        lastReloadStr,
			},
			"redis": checkRedis(d),
		}

		response := statusResponse{
			Mode:       determineMode(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineMode(components map[string]componentStatus) string {
	if idx, exists := components["index"]; exists && !idx.OK {
		return "critical" // no activity records registered
	}

	// Redis down is non-critical: donations fail into the error log,
	// prediction ranking stops persisting.
	if rds, exists := components["redis"]; exists && !rds.OK {
		return "degraded"
	}

	return "ok"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "journal-and-usage-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "journal-and-usage-disabled",
			Error:  "timeout",
		}
	}

	status := componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "journal-and-usage-enabled",
		Error:  "none",
	}
	if count, err := redisstore.NewStore(d.RedisClient).CountInteractions(ctx); err == nil {
		status.JournalEntries = &count
	}
	return status
}
