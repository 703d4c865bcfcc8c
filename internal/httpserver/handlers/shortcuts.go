package handlers

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/logger"
	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

type shortcutItem struct {
	Action          string `json:"action"`
	Identifier      string `json:"identifier"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	SuggestedPhrase string `json:"suggested_phrase"`
}

type shortcutsResponse struct {
	Shortcuts []shortcutItem `json:"shortcuts"`
}

// ListShortcuts returns the full shortcut catalog, one entry per action,
// with the currently effective text (built-in or locale override).
func ListShortcuts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := d.Catalog.Entries()

		items := make([]shortcutItem, 0, len(entries))
		for a, e := range entries {
			items = append(items, shortcutItem{
				Action:          a.String(),
				Identifier:      e.Identifier,
				Title:           e.Title,
				Description:     e.Description,
				SuggestedPhrase: e.SuggestedPhrase,
			})
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Action < items[j].Action })

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(shortcutsResponse{Shortcuts: items})
	}
}

// GetActivity builds and returns the activity record for one shortcut
// action. Unknown actions get a 404.
func GetActivity(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "action")

		action, err := shortcut.ParseAction(slug)
		if err != nil {
			d.Logger.Debug("unknown shortcut action requested",
				logger.String("action", slug))
			http.Error(w, "unknown shortcut action", http.StatusNotFound)
			return
		}

		record := d.Builder.Build(action)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(record)
	}
}
