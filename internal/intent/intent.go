package intent

import (
	"fmt"
	"time"
)

// Kind selects which of the three navigation intents to construct.
// The set is closed, like the shortcut actions.
type Kind string

const (
	KindOpenWebsite      Kind = "open-website"
	KindOpenHistoryEntry Kind = "open-history-entry"
	KindOpenBookmark     Kind = "open-bookmark"
)

// Kinds returns every intent kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindOpenWebsite, KindOpenHistoryEntry, KindOpenBookmark}
}

// ParseKind converts a raw slug into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindOpenWebsite, KindOpenHistoryEntry, KindOpenBookmark:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown intent kind: %q", s)
}

// Intent is a structured description of a repeatable navigation action,
// donated so the assistant can learn to predict it. The URL is taken
// as-is: donation performs no local validation.
type Intent struct {
	Kind            Kind   `json:"kind"`
	URL             string `json:"url"`
	SuggestedPhrase string `json:"suggested_phrase"`
}

// NewIntent builds the intent for a kind and URL.
// The phrase switch is exhaustive over the closed kind set.
func NewIntent(kind Kind, url string) Intent {
	return Intent{
		Kind:            kind,
		URL:             url,
		SuggestedPhrase: suggestedPhrase(kind),
	}
}

func suggestedPhrase(kind Kind) string {
	switch kind {
	case KindOpenWebsite:
		return "Open this website"
	case KindOpenHistoryEntry:
		return "Reopen this page from my history"
	case KindOpenBookmark:
		return "Open this bookmark"
	}
	return ""
}

// Interaction wraps a donated intent with its submission metadata.
type Interaction struct {
	ID        string    `json:"id"`
	Intent    Intent    `json:"intent"`
	DonatedAt time.Time `json:"donated_at"`
}
