package shortcut

import "fmt"

// Action is one of the user-invocable browser shortcuts.
// The set is closed: every switch over Action must cover all six cases
// so that adding a new shortcut fails loudly instead of falling through.
type Action string

const (
	ActionNewTab        Action = "new-tab"
	ActionNewPrivateTab Action = "new-private-tab"
	ActionClearHistory  Action = "clear-history"
	ActionEnableVPN     Action = "enable-vpn"
	ActionOpenFeed      Action = "open-feed"
	ActionOpenPlaylist  Action = "open-playlist"
)

// IdentifierPrefix is prepended to the action slug to form the persistent
// activity identifier handed to the search/prediction surfaces.
const IdentifierPrefix = "org.wrenlabs.browser."

// All returns every action in declaration order.
func All() []Action {
	return []Action{
		ActionNewTab,
		ActionNewPrivateTab,
		ActionClearHistory,
		ActionEnableVPN,
		ActionOpenFeed,
		ActionOpenPlaylist,
	}
}

// ParseAction converts a raw slug into an Action.
// Anything outside the closed set is rejected.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionNewTab, ActionNewPrivateTab, ActionClearHistory,
		ActionEnableVPN, ActionOpenFeed, ActionOpenPlaylist:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown shortcut action: %q", s)
}

// Identifier returns the persistent identifier for the action.
// Example: "new-tab" -> "org.wrenlabs.browser.new-tab"
func (a Action) Identifier() string {
	return IdentifierPrefix + string(a)
}

func (a Action) String() string {
	return string(a)
}
