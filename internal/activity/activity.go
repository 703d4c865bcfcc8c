package activity

import (
	"strings"
	"time"

	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

// Record describes one user-invocable shortcut for the search and
// prediction surfaces. The record is built on demand from the catalog and
// never mutated; the indexing side owns whatever persistence it wants.
type Record struct {
	// Identifier is the persistent activity identifier.
	// Stable across rebuilds for the same action.
	Identifier string `json:"identifier"`

	// Action is the shortcut this record describes.
	Action shortcut.Action `json:"action"`

	Title           string `json:"title"`
	Description     string `json:"description"`
	SuggestedPhrase string `json:"suggested_phrase"`

	// Keywords are lowercase search terms derived from the title.
	Keywords []string `json:"keywords"`

	// Eligibility flags for the OS search/prediction surfaces.
	// Always true for shortcut activities.
	EligibleForSearch     bool `json:"eligible_for_search"`
	EligibleForPrediction bool `json:"eligible_for_prediction"`

	// BuiltAt is when this record was constructed.
	BuiltAt time.Time `json:"built_at"`
}

// Builder constructs activity records from catalog entries.
type Builder struct {
	catalog *shortcut.Catalog
}

// NewBuilder creates a builder over the given catalog.
func NewBuilder(catalog *shortcut.Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build constructs the activity record for an action.
// Always succeeds for a valid action; there is no failure mode here.
func (b *Builder) Build(a shortcut.Action) Record {
	entry := b.catalog.Entry(a)

	return Record{
		Identifier:            entry.Identifier,
		Action:                a,
		Title:                 entry.Title,
		Description:           entry.Description,
		SuggestedPhrase:       entry.SuggestedPhrase,
		Keywords:              keywords(entry.Title),
		EligibleForSearch:     true,
		EligibleForPrediction: true,
		BuiltAt:               time.Now(),
	}
}

// BuildAll constructs records for every action in declaration order.
func (b *Builder) BuildAll() []Record {
	actions := shortcut.All()
	records := make([]Record, 0, len(actions))
	for _, a := range actions {
		records = append(records, b.Build(a))
	}
	return records
}

// keywords lowercases and splits a title into search terms.
func keywords(title string) []string {
	fields := strings.Fields(strings.ToLower(title))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, f)
	}
	return terms
}
