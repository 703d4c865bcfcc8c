package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/intent"
	"github.com/wrenlabs/shortcuts/internal/logger"
	"github.com/wrenlabs/shortcuts/internal/metrics"
)

type donateRequest struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

type donateResponse struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	URL             string `json:"url"`
	SuggestedPhrase string `json:"suggested_phrase"`
	Status          string `json:"status"`
}

// Donate hands an intent to the donor. The journal write happens in the
// background; the endpoint answers 202 as soon as the donation is handed
// off, and write failures only surface in the error log.
func Donate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req donateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		kind, err := intent.ParseKind(strings.TrimSpace(req.Kind))
		if err != nil {
			d.Logger.Debug("unknown intent kind requested",
				logger.String("kind", req.Kind))
			http.Error(w, "unknown intent kind", http.StatusBadRequest)
			return
		}

		interaction := d.Donor.Donate(kind, req.URL)
		metrics.RecordDonation(string(kind))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(donateResponse{
			ID:              interaction.ID,
			Kind:            string(interaction.Intent.Kind),
			URL:             interaction.Intent.URL,
			SuggestedPhrase: interaction.Intent.SuggestedPhrase,
			Status:          "donated",
		})
	}
}
