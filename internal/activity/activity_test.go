package activity

import (
	"testing"

	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

func TestBuildEligibilityFlags(t *testing.T) {
	builder := NewBuilder(shortcut.NewCatalog())

	for _, a := range shortcut.All() {
		record := builder.Build(a)

		if !record.EligibleForSearch {
			t.Errorf("Build(%v).EligibleForSearch = false, want true", a)
		}
		if !record.EligibleForPrediction {
			t.Errorf("Build(%v).EligibleForPrediction = false, want true", a)
		}
	}
}

func TestBuildMatchesCatalog(t *testing.T) {
	catalog := shortcut.NewCatalog()
	builder := NewBuilder(catalog)

	for _, a := range shortcut.All() {
		record := builder.Build(a)
		entry := catalog.Entry(a)

		if record.Identifier != entry.Identifier {
			t.Errorf("Build(%v).Identifier = %q, want catalog %q", a, record.Identifier, entry.Identifier)
		}
		if record.Title != entry.Title {
			t.Errorf("Build(%v).Title = %q, want catalog %q", a, record.Title, entry.Title)
		}
		if record.Description != entry.Description {
			t.Errorf("Build(%v).Description = %q, want catalog %q", a, record.Description, entry.Description)
		}
		if record.SuggestedPhrase != entry.SuggestedPhrase {
			t.Errorf("Build(%v).SuggestedPhrase = %q, want catalog %q", a, record.SuggestedPhrase, entry.SuggestedPhrase)
		}
		if record.Action != a {
			t.Errorf("Build(%v).Action = %v", a, record.Action)
		}
		if len(record.Keywords) == 0 {
			t.Errorf("Build(%v).Keywords is empty", a)
		}
		if record.BuiltAt.IsZero() {
			t.Errorf("Build(%v).BuiltAt is zero", a)
		}
	}
}

func TestBuildAll(t *testing.T) {
	builder := NewBuilder(shortcut.NewCatalog())

	records := builder.BuildAll()
	if len(records) != len(shortcut.All()) {
		t.Fatalf("BuildAll() returned %d records, want %d", len(records), len(shortcut.All()))
	}

	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.Identifier] {
			t.Errorf("BuildAll() duplicate identifier %q", r.Identifier)
		}
		seen[r.Identifier] = true
	}
}

func TestKeywordsAreLowercase(t *testing.T) {
	builder := NewBuilder(shortcut.NewCatalog())

	record := builder.Build(shortcut.ActionClearHistory)
	for _, kw := range record.Keywords {
		for _, r := range kw {
			if r >= 'A' && r <= 'Z' {
				t.Errorf("keyword %q contains uppercase", kw)
			}
		}
	}
}
