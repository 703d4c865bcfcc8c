package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wrenlabs/shortcuts/internal/intent"
)

// Store handles Redis operations for the donation journal and the
// shortcut usage counters.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveInteraction journals a donated interaction. The interaction is
// stored as JSON and indexed by donation time so the janitor can sweep
// old entries.
func (s *Store) SaveInteraction(ctx context.Context, interaction intent.Interaction) error {
	data, err := json.Marshal(interaction)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}

	key := InteractionKey(interaction.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, KeyInteractionsByTime, redis.Z{
		Score:  float64(interaction.DonatedAt.Unix()),
		Member: interaction.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	return nil
}

// GetInteraction retrieves a journaled interaction by ID
func (s *Store) GetInteraction(ctx context.Context, id string) (*intent.Interaction, error) {
	data, err := s.client.Get(ctx, InteractionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("interaction not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}

	var interaction intent.Interaction
	if err := json.Unmarshal(data, &interaction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interaction: %w", err)
	}

	return &interaction, nil
}

// CountInteractions returns the number of journaled interactions
func (s *Store) CountInteractions(ctx context.Context) (int64, error) {
	count, err := s.client.ZCard(ctx, KeyInteractionsByTime).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count interactions: %w", err)
	}
	return count, nil
}

// SweepInteractions deletes interactions donated before the cutoff.
// Returns the number of entries removed.
func (s *Store) SweepInteractions(ctx context.Context, cutoff time.Time) (int, error) {
	max := fmt.Sprintf("%d", cutoff.Unix())
	ids, err := s.client.ZRangeByScore(ctx, KeyInteractionsByTime, &redis.ZRangeBy{
		Min: "-inf",
		Max: max,
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list old interactions: %w", err)
	}

	if len(ids) == 0 {
		return 0, nil
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, InteractionKey(id))
		pipe.ZRem(ctx, KeyInteractionsByTime, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to sweep interactions: %w", err)
	}

	return len(ids), nil
}
