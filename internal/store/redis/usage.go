package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

// IncrementUsage bumps the perform counter for an action
func (s *Store) IncrementUsage(ctx context.Context, a shortcut.Action) error {
	if err := s.client.HIncrBy(ctx, KeyUsage, a.String(), 1).Err(); err != nil {
		return fmt.Errorf("failed to increment usage for %s: %w", a, err)
	}
	return nil
}

// GetUsageCounts retrieves the perform counters for all actions.
// Stale fields for actions no longer in the closed set are skipped.
func (s *Store) GetUsageCounts(ctx context.Context) (map[shortcut.Action]int64, error) {
	fields, err := s.client.HGetAll(ctx, KeyUsage).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get usage counts: %w", err)
	}

	counts := make(map[shortcut.Action]int64, len(fields))
	for slug, raw := range fields {
		action, err := shortcut.ParseAction(slug)
		if err != nil {
			continue
		}
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		counts[action] = count
	}

	return counts, nil
}
