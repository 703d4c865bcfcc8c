package locale

// LocaleConfig represents the top-level structure of the locale yaml.
// Keys under shortcuts are action slugs ("new-tab", "clear-history", ...).
type LocaleConfig struct {
	Language  string                  `yaml:"language,omitempty"`
	Shortcuts map[string]ShortcutText `yaml:"shortcuts"`
}

// ShortcutText contains the translated strings for one action.
// Empty fields keep the built-in English text.
type ShortcutText struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Phrase      string `yaml:"phrase,omitempty"`
}
