package browser

import "context"

// The dispatcher drives the browser through these interfaces. The real
// subsystems (tab management, history persistence, VPN, settings
// presentation) live elsewhere; this package only defines the surface the
// shortcut layer needs from them, plus an in-memory session used by the
// daemon and tests.

// Controller opens new navigation surfaces.
type Controller interface {
	// OpenBlankTab opens a new blank tab. When focusAddressBar is true the
	// address bar receives input focus immediately.
	OpenBlankTab(ctx context.Context, private, focusAddressBar bool) (Tab, error)
}

// Tab is one open navigation surface.
type Tab interface {
	// ID identifies the tab within its session.
	ID() string

	// Private reports whether the tab is a private browsing surface.
	Private() bool

	// ScrollToFeed scrolls the tab to its content feed section, if present.
	ScrollToFeed(ctx context.Context) error
}

// TabManager exposes the per-tab state the shortcut layer touches.
type TabManager interface {
	// SelectedTab returns the currently selected tab, if any.
	SelectedTab() (Tab, bool)

	// ClearTabHistories clears the navigation history of every open tab.
	ClearTabHistories(ctx context.Context) error
}

// HistoryStore is the browsing history persistence layer.
type HistoryStore interface {
	// DeleteAll removes every history record.
	DeleteAll(ctx context.Context) error
}

// VPN is the VPN subsystem. The shortcut layer only reads its state and
// requests reconnection; it never owns a transition.
type VPN interface {
	State() VPNState
	Reconnect(ctx context.Context) error
}

// SettingsPresenter presents the VPN enablement settings surface.
type SettingsPresenter interface {
	ShowVPNSettings(ctx context.Context) error
}
