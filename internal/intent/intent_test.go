package intent

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{
			name:  "open website",
			input: "open-website",
			want:  KindOpenWebsite,
		},
		{
			name:  "open history entry",
			input: "open-history-entry",
			want:  KindOpenHistoryEntry,
		},
		{
			name:  "open bookmark",
			input: "open-bookmark",
			want:  KindOpenBookmark,
		},
		{
			name:    "unknown kind",
			input:   "open-reading-list",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseKind(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewIntentPhrases(t *testing.T) {
	seen := make(map[string]Kind)
	for _, kind := range Kinds() {
		it := NewIntent(kind, "https://example.com")

		if it.Kind != kind {
			t.Errorf("NewIntent(%v).Kind = %v", kind, it.Kind)
		}
		if it.URL != "https://example.com" {
			t.Errorf("NewIntent(%v).URL = %q", kind, it.URL)
		}
		if it.SuggestedPhrase == "" {
			t.Errorf("NewIntent(%v).SuggestedPhrase is empty", kind)
		}
		if prev, dup := seen[it.SuggestedPhrase]; dup {
			t.Errorf("phrase %q shared by %v and %v", it.SuggestedPhrase, prev, kind)
		}
		seen[it.SuggestedPhrase] = kind
	}
}

// Donation performs no local URL validation: empty and malformed URLs
// still produce a complete intent.
func TestNewIntentKeepsURLVerbatim(t *testing.T) {
	for _, url := range []string{"", "not a url", "://missing-scheme"} {
		it := NewIntent(KindOpenWebsite, url)
		if it.URL != url {
			t.Errorf("NewIntent().URL = %q, want %q", it.URL, url)
		}
		if it.SuggestedPhrase == "" {
			t.Error("NewIntent().SuggestedPhrase is empty for odd URL")
		}
	}
}
