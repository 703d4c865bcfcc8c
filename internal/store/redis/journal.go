package redis

import (
	"context"

	"github.com/wrenlabs/shortcuts/internal/intent"
)

// Journal adapts the store to the donor's assistant sink: a donated
// interaction is submitted by journaling it.
type Journal struct {
	store *Store
}

// NewJournal creates an assistant sink over the store
func NewJournal(store *Store) *Journal {
	return &Journal{store: store}
}

// Submit journals the interaction. The donor treats any error here as the
// donation error and logs it.
func (j *Journal) Submit(ctx context.Context, interaction intent.Interaction) error {
	return j.store.SaveInteraction(ctx, interaction)
}
