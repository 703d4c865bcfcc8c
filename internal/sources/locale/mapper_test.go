package locale

import (
	"testing"

	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

func TestMapOverrides(t *testing.T) {
	config := LocaleConfig{
		Shortcuts: map[string]ShortcutText{
			"new-tab":       {Title: "Nouvel onglet"},
			"enable-vpn":    {Phrase: "Active le VPN"},
			"open-sidebar":  {Title: "ignored, unknown action"},
			"open-playlist": {}, // no usable text
		},
	}

	overrides, unknown := NewMapper().MapOverrides(config)

	if len(overrides) != 2 {
		t.Fatalf("MapOverrides() returned %d overrides, want 2", len(overrides))
	}
	if got := overrides[shortcut.ActionNewTab].Title; got != "Nouvel onglet" {
		t.Errorf("new-tab override title = %q", got)
	}
	if got := overrides[shortcut.ActionEnableVPN].SuggestedPhrase; got != "Active le VPN" {
		t.Errorf("enable-vpn override phrase = %q", got)
	}
	if _, ok := overrides[shortcut.ActionOpenPlaylist]; ok {
		t.Error("MapOverrides() kept an override with no text")
	}

	if len(unknown) != 1 || unknown[0] != "open-sidebar" {
		t.Errorf("unknown slugs = %v, want [open-sidebar]", unknown)
	}
}

func TestMapOverridesEmptyConfig(t *testing.T) {
	overrides, unknown := NewMapper().MapOverrides(LocaleConfig{})

	if len(overrides) != 0 {
		t.Errorf("MapOverrides() returned %d overrides for empty config", len(overrides))
	}
	if len(unknown) != 0 {
		t.Errorf("MapOverrides() returned unknown slugs %v for empty config", unknown)
	}
}
