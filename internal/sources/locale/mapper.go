package locale

import (
	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

// Mapper converts a LocaleConfig into catalog overrides
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapOverrides converts the parsed locale file into per-action overrides.
// Slugs outside the closed action set are skipped and returned so the
// caller can log them; they never abort a reload.
func (m *Mapper) MapOverrides(config LocaleConfig) (map[shortcut.Action]shortcut.Override, []string) {
	overrides := make(map[shortcut.Action]shortcut.Override, len(config.Shortcuts))
	var unknown []string

	for slug, text := range config.Shortcuts {
		action, err := shortcut.ParseAction(slug)
		if err != nil {
			unknown = append(unknown, slug)
			continue
		}

		// Entries with no usable text are dropped entirely.
		if text.Title == "" && text.Description == "" && text.Phrase == "" {
			continue
		}

		overrides[action] = shortcut.Override{
			Title:           text.Title,
			Description:     text.Description,
			SuggestedPhrase: text.Phrase,
		}
	}

	return overrides, unknown
}
