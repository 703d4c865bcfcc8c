package index

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wrenlabs/shortcuts/internal/activity"
	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

// MemoryIndex holds the registered activity records and their usage
// counters. It is the in-process view of what the search and prediction
// surfaces know about; Redis only persists counters across restarts.
type MemoryIndex struct {
	mu         sync.RWMutex
	records    map[string]activity.Record // identifier -> record
	counters   map[shortcut.Action]int64  // perform count per action
	lastReload time.Time
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		records:  make(map[string]activity.Record),
		counters: make(map[shortcut.Action]int64),
	}
}

// UpdateRecords replaces all registered records.
// Counters survive a reload; only the display side is rebuilt.
func (idx *MemoryIndex) UpdateRecords(records []activity.Record) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.records = make(map[string]activity.Record, len(records))
	for _, r := range records {
		idx.records[r.Identifier] = r
	}
	idx.lastReload = time.Now()
}

// Get retrieves a record by identifier.
func (idx *MemoryIndex) Get(identifier string) (activity.Record, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	r, ok := idx.records[identifier]
	return r, ok
}

// All returns every registered record sorted by identifier.
func (idx *MemoryIndex) All() []activity.Record {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.sortedLocked(idx.records)
}

// Search returns the records whose title, phrase or keywords contain the
// query, case-insensitively. Only search-eligible records are considered.
func (idx *MemoryIndex) Search(query string) []activity.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	matches := make(map[string]activity.Record)
	for id, r := range idx.records {
		if !r.EligibleForSearch {
			continue
		}
		if matchesQuery(r, query) {
			matches[id] = r
		}
	}
	return idx.sortedLocked(matches)
}

func matchesQuery(r activity.Record, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.SuggestedPhrase), query) {
		return true
	}
	for _, kw := range r.Keywords {
		if strings.Contains(kw, query) {
			return true
		}
	}
	return false
}

// sortedLocked returns records sorted by descending usage counter then
// identifier, so frequently performed shortcuts rank first for prediction.
func (idx *MemoryIndex) sortedLocked(records map[string]activity.Record) []activity.Record {
	out := make([]activity.Record, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := idx.counters[out[i].Action], idx.counters[out[j].Action]
		if ci != cj {
			return ci > cj
		}
		return out[i].Identifier < out[j].Identifier
	})
	return out
}

// IncrementCounter bumps the perform count for an action.
func (idx *MemoryIndex) IncrementCounter(a shortcut.Action) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.counters[a]++
}

// Counter returns the perform count for an action.
func (idx *MemoryIndex) Counter(a shortcut.Action) int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.counters[a]
}

// SetCounters replaces all usage counters (startup sync from Redis).
func (idx *MemoryIndex) SetCounters(counters map[shortcut.Action]int64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.counters = make(map[shortcut.Action]int64, len(counters))
	for a, c := range counters {
		idx.counters[a] = c
	}
}

// Count returns the number of registered records.
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.records)
}

// GetLastReload returns the timestamp of the last records reload.
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
