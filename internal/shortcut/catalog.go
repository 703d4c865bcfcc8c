package shortcut

import "sync"

// Entry holds the display strings derived for one action.
// The action fully determines its entry; there is no other state involved.
type Entry struct {
	Identifier      string `json:"identifier"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	SuggestedPhrase string `json:"suggested_phrase"`
}

// Override replaces the built-in text for one action.
// Empty fields keep the default.
type Override struct {
	Title           string
	Description     string
	SuggestedPhrase string
}

// Catalog maps every action to its display entry.
// Lookups are pure and total: defaults are compiled in, and an optional
// locale file can override individual strings at runtime.
type Catalog struct {
	mu        sync.RWMutex
	overrides map[Action]Override
}

// NewCatalog creates a catalog serving the built-in English text.
func NewCatalog() *Catalog {
	return &Catalog{
		overrides: make(map[Action]Override),
	}
}

// defaultEntry returns the compiled-in text for an action.
// The switch is exhaustive over the closed action set; the final return is
// unreachable for any value produced by ParseAction or All.
func defaultEntry(a Action) Entry {
	switch a {
	case ActionNewTab:
		return Entry{
			Identifier:      a.Identifier(),
			Title:           "Open New Tab",
			Description:     "Opens a new tab and focuses the address bar",
			SuggestedPhrase: "Open a new tab",
		}
	case ActionNewPrivateTab:
		return Entry{
			Identifier:      a.Identifier(),
			Title:           "Open New Private Tab",
			Description:     "Opens a new private tab and focuses the address bar",
			SuggestedPhrase: "Open a new private tab",
		}
	case ActionClearHistory:
		return Entry{
			Identifier:      a.Identifier(),
			Title:           "Clear Browsing History",
			Description:     "Deletes all browsing history and starts over in a fresh tab",
			SuggestedPhrase: "Clear my browsing history",
		}
	case ActionEnableVPN:
		return Entry{
			Identifier:      a.Identifier(),
			Title:           "Enable VPN",
			Description:     "Turns on the VPN connection or opens VPN settings",
			SuggestedPhrase: "Enable the VPN",
		}
	case ActionOpenFeed:
		return Entry{
			Identifier:      a.Identifier(),
			Title:           "Open Content Feed",
			Description:     "Opens a new tab scrolled to your content feed",
			SuggestedPhrase: "Show my feed",
		}
	case ActionOpenPlaylist:
		return Entry{
			Identifier:      a.Identifier(),
			Title:           "Open Playlist",
			Description:     "Opens your saved playlist",
			SuggestedPhrase: "Open my playlist",
		}
	}
	return Entry{}
}

// Entry returns the display entry for an action, applying any active
// locale overrides on top of the defaults.
func (c *Catalog) Entry(a Action) Entry {
	e := defaultEntry(a)

	c.mu.RLock()
	ov, ok := c.overrides[a]
	c.mu.RUnlock()
	if !ok {
		return e
	}

	if ov.Title != "" {
		e.Title = ov.Title
	}
	if ov.Description != "" {
		e.Description = ov.Description
	}
	if ov.SuggestedPhrase != "" {
		e.SuggestedPhrase = ov.SuggestedPhrase
	}
	return e
}

// Entries returns the entries for all actions in declaration order.
func (c *Catalog) Entries() map[Action]Entry {
	entries := make(map[Action]Entry, len(All()))
	for _, a := range All() {
		entries[a] = c.Entry(a)
	}
	return entries
}

// SetOverrides replaces the full override set (used by the locale reloader).
func (c *Catalog) SetOverrides(overrides map[Action]Override) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.overrides = make(map[Action]Override, len(overrides))
	for a, ov := range overrides {
		c.overrides[a] = ov
	}
}
