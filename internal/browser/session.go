package browser

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Session is an in-memory browser session. It implements Controller,
// TabManager and HistoryStore so the daemon and the dispatcher tests have
// a concrete collaborator to drive.
type Session struct {
	mu       sync.Mutex
	tabs     []*sessionTab
	selected int // index into tabs, -1 when no tab is open
	history  []HistoryEntry
	nextID   int
}

// HistoryEntry is one visited URL in the session-wide browsing history.
type HistoryEntry struct {
	URL       string    `json:"url"`
	VisitedAt time.Time `json:"visited_at"`
}

type sessionTab struct {
	session *Session
	id      string
	private bool
	// visits is the tab's own navigation history, cleared independently
	// of the session-wide history store.
	visits []string
}

// NewSession creates a session with no open tabs.
func NewSession() *Session {
	return &Session{selected: -1}
}

// OpenBlankTab opens a new blank tab and selects it.
func (s *Session) OpenBlankTab(ctx context.Context, private, focusAddressBar bool) (Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	tab := &sessionTab{
		session: s,
		id:      fmt.Sprintf("tab-%d", s.nextID),
		private: private,
	}
	s.tabs = append(s.tabs, tab)
	s.selected = len(s.tabs) - 1
	return tab, nil
}

// SelectedTab returns the currently selected tab, if any.
func (s *Session) SelectedTab() (Tab, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected < 0 || s.selected >= len(s.tabs) {
		return nil, false
	}
	return s.tabs[s.selected], true
}

// ClearTabHistories clears the navigation history of every open tab.
func (s *Session) ClearTabHistories(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tab := range s.tabs {
		tab.visits = nil
	}
	return nil
}

// Navigate records a visit in the selected tab and the session history.
// Private tabs never touch the session-wide history.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected < 0 || s.selected >= len(s.tabs) {
		return fmt.Errorf("no tab selected")
	}

	tab := s.tabs[s.selected]
	tab.visits = append(tab.visits, url)
	if !tab.private {
		s.history = append(s.history, HistoryEntry{URL: url, VisitedAt: time.Now()})
	}
	return nil
}

// DeleteAll removes every session-wide history record.
func (s *Session) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	return nil
}

// History returns a copy of the session-wide browsing history.
func (s *Session) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// TabCount returns the number of open tabs.
func (s *Session) TabCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tabs)
}

func (t *sessionTab) ID() string {
	return t.id
}

func (t *sessionTab) Private() bool {
	return t.private
}

// ScrollToFeed is a no-op for the in-memory session; a rendered surface
// would scroll its feed section here.
func (t *sessionTab) ScrollToFeed(ctx context.Context) error {
	return ctx.Err()
}
