package shortcut

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Action
		wantErr bool
	}{
		{
			name:  "new tab",
			input: "new-tab",
			want:  ActionNewTab,
		},
		{
			name:  "new private tab",
			input: "new-private-tab",
			want:  ActionNewPrivateTab,
		},
		{
			name:  "clear history",
			input: "clear-history",
			want:  ActionClearHistory,
		},
		{
			name:  "enable vpn",
			input: "enable-vpn",
			want:  ActionEnableVPN,
		},
		{
			name:  "open feed",
			input: "open-feed",
			want:  ActionOpenFeed,
		},
		{
			name:  "open playlist",
			input: "open-playlist",
			want:  ActionOpenPlaylist,
		},
		{
			name:    "unknown action",
			input:   "open-sidebar",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "case sensitive",
			input:   "New-Tab",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAction(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAction(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllCoversEveryAction(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d actions, want 6", len(all))
	}

	seen := make(map[Action]bool, len(all))
	for _, a := range all {
		if seen[a] {
			t.Errorf("All() contains %v twice", a)
		}
		seen[a] = true

		// Every listed action must round-trip through ParseAction.
		parsed, err := ParseAction(string(a))
		if err != nil {
			t.Errorf("ParseAction(%q) error = %v", a, err)
		}
		if parsed != a {
			t.Errorf("ParseAction(%q) = %v, want %v", a, parsed, a)
		}
	}
}

func TestIdentifier(t *testing.T) {
	want := "org.wrenlabs.browser.new-private-tab"
	if got := ActionNewPrivateTab.Identifier(); got != want {
		t.Errorf("Identifier() = %q, want %q", got, want)
	}

	seen := make(map[string]bool)
	for _, a := range All() {
		id := a.Identifier()
		if seen[id] {
			t.Errorf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
}
