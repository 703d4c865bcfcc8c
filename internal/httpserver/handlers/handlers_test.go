package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wrenlabs/shortcuts/internal/activity"
	"github.com/wrenlabs/shortcuts/internal/browser"
	"github.com/wrenlabs/shortcuts/internal/dispatch"
	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/httpserver/handlers"
	"github.com/wrenlabs/shortcuts/internal/index"
	"github.com/wrenlabs/shortcuts/internal/intent"
	"github.com/wrenlabs/shortcuts/internal/logger"
	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

type fakeAssistant struct {
	mu       sync.Mutex
	received []intent.Interaction
}

func (f *fakeAssistant) Submit(ctx context.Context, interaction intent.Interaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, interaction)
	return nil
}

func (f *fakeAssistant) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.received)
}

func newTestDeps() (deps.Deps, *browser.Session, *fakeAssistant) {
	log := logger.NewNop()

	catalog := shortcut.NewCatalog()
	builder := activity.NewBuilder(catalog)

	memIndex := index.NewMemoryIndex()
	memIndex.UpdateRecords(builder.BuildAll())

	session := browser.NewSession()
	vpn := browser.NewStubVPN(browser.VPNState{Phase: browser.VPNInstalled, Connected: true})
	dispatcher := dispatch.New(session, session, session, vpn, nil, log)

	assistant := &fakeAssistant{}
	donor := intent.NewDonor(assistant, log)

	d := deps.Deps{
		Logger:              log,
		StartTime:           time.Now(),
		MemoryIndex:         memIndex,
		Catalog:             catalog,
		Builder:             builder,
		Dispatcher:          dispatcher,
		Donor:               donor,
		LocaleReloadTrigger: make(chan struct{}, 1),
	}
	return d, session, assistant
}

func newRouter(d deps.Deps) chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", handlers.Healthz(d))
	r.Get("/readyz", handlers.Readyz(d))
	r.Post("/reload", handlers.Reload(d))
	r.Get("/shortcuts", handlers.ListShortcuts(d))
	r.Get("/shortcuts/{action}/activity", handlers.GetActivity(d))
	r.Post("/shortcuts/{action}/perform", handlers.Perform(d))
	r.Post("/intents/donate", handlers.Donate(d))
	r.Get("/activities", handlers.SearchActivities(d))
	return r
}

func doRequest(t *testing.T, r chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	d, _, _ := newTestDeps()
	rec := doRequest(t, newRouter(d), http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
}

func TestReadyz(t *testing.T) {
	t.Run("ready once records registered", func(t *testing.T) {
		d, _, _ := newTestDeps()
		rec := doRequest(t, newRouter(d), http.MethodGet, "/readyz", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("not ready with empty index", func(t *testing.T) {
		d, _, _ := newTestDeps()
		d.MemoryIndex = index.NewMemoryIndex()
		rec := doRequest(t, newRouter(d), http.MethodGet, "/readyz", "")
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}

func TestListShortcuts(t *testing.T) {
	d, _, _ := newTestDeps()
	rec := doRequest(t, newRouter(d), http.MethodGet, "/shortcuts", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Shortcuts []struct {
			Action          string `json:"action"`
			Identifier      string `json:"identifier"`
			Title           string `json:"title"`
			Description     string `json:"description"`
			SuggestedPhrase string `json:"suggested_phrase"`
		} `json:"shortcuts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if got, want := len(resp.Shortcuts), len(shortcut.All()); got != want {
		t.Fatalf("expected %d shortcuts, got %d", want, got)
	}
	for _, item := range resp.Shortcuts {
		if item.Title == "" || item.Description == "" || item.SuggestedPhrase == "" {
			t.Errorf("shortcut %q has empty catalog text", item.Action)
		}
		if !strings.HasPrefix(item.Identifier, shortcut.IdentifierPrefix) {
			t.Errorf("shortcut %q identifier %q missing prefix", item.Action, item.Identifier)
		}
	}
}

func TestGetActivity(t *testing.T) {
	d, _, _ := newTestDeps()
	r := newRouter(d)

	t.Run("known action", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/shortcuts/clear-history/activity", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var record activity.Record
		if err := json.Unmarshal(rec.Body.Bytes(), &record); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if record.Identifier != shortcut.ActionClearHistory.Identifier() {
			t.Errorf("unexpected identifier %q", record.Identifier)
		}
		if !record.EligibleForSearch || !record.EligibleForPrediction {
			t.Error("activity record must be eligible for search and prediction")
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/shortcuts/launch-rocket/activity", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestPerform(t *testing.T) {
	t.Run("dispatches and counts", func(t *testing.T) {
		d, session, _ := newTestDeps()
		rec := doRequest(t, newRouter(d), http.MethodPost, "/shortcuts/new-tab/perform", "")

		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", rec.Code)
		}
		if session.TabCount() != 1 {
			t.Errorf("expected 1 tab after perform, got %d", session.TabCount())
		}
		if got := d.MemoryIndex.Counter(shortcut.ActionNewTab); got != 1 {
			t.Errorf("expected counter 1, got %d", got)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		d, session, _ := newTestDeps()
		rec := doRequest(t, newRouter(d), http.MethodPost, "/shortcuts/self-destruct/perform", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if session.TabCount() != 0 {
			t.Errorf("expected no tabs, got %d", session.TabCount())
		}
	})
}

func TestDonate(t *testing.T) {
	t.Run("valid donation", func(t *testing.T) {
		d, _, assistant := newTestDeps()
		rec := doRequest(t, newRouter(d), http.MethodPost, "/intents/donate",
			`{"kind":"open-website","url":"https://example.com"}`)

		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", rec.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp["id"] == "" {
			t.Error("expected non-empty interaction id")
		}
		if resp["kind"] != "open-website" {
			t.Errorf("expected kind open-website, got %q", resp["kind"])
		}

		// Submission runs in the background; drain before asserting.
		d.Donor.Close()
		if assistant.count() != 1 {
			t.Errorf("expected 1 submitted interaction, got %d", assistant.count())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		d, _, assistant := newTestDeps()
		rec := doRequest(t, newRouter(d), http.MethodPost, "/intents/donate",
			`{"kind":"open-portal","url":"https://example.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		d.Donor.Close()
		if assistant.count() != 0 {
			t.Errorf("expected no submissions, got %d", assistant.count())
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		d, _, _ := newTestDeps()
		rec := doRequest(t, newRouter(d), http.MethodPost, "/intents/donate", `{not json`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSearchActivities(t *testing.T) {
	d, _, _ := newTestDeps()
	r := newRouter(d)

	t.Run("no query returns everything", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/activities", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp struct {
			Results []activity.Record `json:"results"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if got, want := len(resp.Results), len(shortcut.All()); got != want {
			t.Errorf("expected %d results, got %d", want, got)
		}
	})

	t.Run("query filters records", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/activities?q=vpn", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp struct {
			Results []activity.Record `json:"results"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if len(resp.Results) != 1 {
			t.Fatalf("expected 1 result for vpn, got %d", len(resp.Results))
		}
		if resp.Results[0].Action != shortcut.ActionEnableVPN {
			t.Errorf("expected enable-vpn record, got %q", resp.Results[0].Action)
		}
	})

	t.Run("no match returns empty list", func(t *testing.T) {
		rec := doRequest(t, r, http.MethodGet, "/activities?q=zzz", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"results":[]`) {
			t.Errorf("expected empty results array, got %s", rec.Body.String())
		}
	})
}

func TestReload(t *testing.T) {
	d, _, _ := newTestDeps()
	r := newRouter(d)

	rec := doRequest(t, r, http.MethodPost, "/reload", "")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202 on first reload, got %d", rec.Code)
	}

	// Trigger channel has capacity 1 and nothing drains it here.
	rec = doRequest(t, r, http.MethodPost, "/reload", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on queued reload, got %d", rec.Code)
	}
}
