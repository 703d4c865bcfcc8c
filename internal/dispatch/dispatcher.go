package dispatch

import (
	"context"

	"github.com/wrenlabs/shortcuts/internal/browser"
	"github.com/wrenlabs/shortcuts/internal/logger"
	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

// Dispatcher performs shortcut actions by delegating to the browser
// collaborators. Perform never reports an error back to the caller:
// collaborator failures are absorbed as no-ops and logged at debug level.
type Dispatcher struct {
	controller browser.Controller
	tabs       browser.TabManager
	history    browser.HistoryStore
	vpn        browser.VPN
	settings   browser.SettingsPresenter // nil when no settings surface is available
	logger     logger.Logger
}

// New creates a dispatcher over the given collaborators.
// settings may be nil; presenting VPN settings then degrades to a no-op.
func New(
	controller browser.Controller,
	tabs browser.TabManager,
	history browser.HistoryStore,
	vpn browser.VPN,
	settings browser.SettingsPresenter,
	log logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		controller: controller,
		tabs:       tabs,
		history:    history,
		vpn:        vpn,
		settings:   settings,
		logger:     log,
	}
}

// Perform executes exactly one shortcut action.
// The switch is exhaustive over the closed action set; callers are
// expected to hold an Action produced by shortcut.ParseAction.
func (d *Dispatcher) Perform(ctx context.Context, a shortcut.Action) {
	switch a {
	case shortcut.ActionNewTab:
		d.openBlankTab(ctx, false)
	case shortcut.ActionNewPrivateTab:
		d.openBlankTab(ctx, true)
	case shortcut.ActionClearHistory:
		d.clearHistory(ctx)
	case shortcut.ActionEnableVPN:
		d.enableVPN(ctx)
	case shortcut.ActionOpenFeed:
		d.openFeed(ctx)
	case shortcut.ActionOpenPlaylist:
		// Not implemented until the playlist surface ships.
		d.logger.Debug("open-playlist shortcut is not implemented")
	default:
		d.logger.Warn("refusing to perform unknown action",
			logger.String("action", a.String()))
	}
}

// openBlankTab opens a new blank tab with the address bar focused.
func (d *Dispatcher) openBlankTab(ctx context.Context, private bool) {
	if _, err := d.controller.OpenBlankTab(ctx, private, true); err != nil {
		d.logger.Debug("failed to open blank tab",
			logger.Bool("private", private),
			logger.Error(err))
	}
}

// clearHistory runs the three stages strictly in order: delete all history
// records, then clear per-tab histories, then open a fresh non-private
// tab. Each stage completes before the next begins; a failed stage is
// absorbed and the chain still advances.
func (d *Dispatcher) clearHistory(ctx context.Context) {
	if err := d.history.DeleteAll(ctx); err != nil {
		d.logger.Debug("failed to delete history records", logger.Error(err))
	}
	if err := d.tabs.ClearTabHistories(ctx); err != nil {
		d.logger.Debug("failed to clear tab histories", logger.Error(err))
	}
	d.openBlankTab(ctx, false)
}

// enableVPN opens a blank tab, then branches on the VPN state. Only an
// installed-but-disconnected subscription triggers a reconnect; an
// installed-and-connected one needs nothing further. Every other phase is
// sent to the VPN settings surface when one is available.
func (d *Dispatcher) enableVPN(ctx context.Context) {
	d.openBlankTab(ctx, false)

	state := d.vpn.State()
	switch state.Phase {
	case browser.VPNInstalled:
		if state.Connected {
			return
		}
		if err := d.vpn.Reconnect(ctx); err != nil {
			d.logger.Debug("vpn reconnect failed", logger.Error(err))
		}
	case browser.VPNNotPurchased, browser.VPNPurchased, browser.VPNExpired:
		d.showVPNSettings(ctx)
	default:
		d.logger.Warn("vpn reported unknown phase",
			logger.String("phase", string(state.Phase)))
	}
}

func (d *Dispatcher) showVPNSettings(ctx context.Context) {
	if d.settings == nil {
		d.logger.Debug("no settings surface available for vpn enablement")
		return
	}
	if err := d.settings.ShowVPNSettings(ctx); err != nil {
		d.logger.Debug("failed to present vpn settings", logger.Error(err))
	}
}

// openFeed opens a blank tab and scrolls the selected tab to the feed
// section. No selected tab means nothing to scroll.
func (d *Dispatcher) openFeed(ctx context.Context) {
	d.openBlankTab(ctx, false)

	tab, ok := d.tabs.SelectedTab()
	if !ok {
		d.logger.Debug("no selected tab to scroll to feed")
		return
	}
	if err := tab.ScrollToFeed(ctx); err != nil {
		d.logger.Debug("failed to scroll to feed",
			logger.String("tab", tab.ID()),
			logger.Error(err))
	}
}
