package scheduler

import (
	"context"

	"github.com/wrenlabs/shortcuts/internal/index"
	"github.com/wrenlabs/shortcuts/internal/logger"
	redisstore "github.com/wrenlabs/shortcuts/internal/store/redis"
)

// UsageSyncer restores the perform counters from Redis into the memory
// index on startup, so prediction ranking survives restarts.
type UsageSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewUsageSyncer creates a new usage syncer
func NewUsageSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *UsageSyncer {
	return &UsageSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads usage counters from Redis and updates the memory index
func (us *UsageSyncer) Sync(ctx context.Context) error {
	us.logger.Info("syncing usage counters from redis to memory")

	counts, err := us.store.GetUsageCounts(ctx)
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		us.logger.Info("no usage counters found in redis")
		return nil
	}

	us.index.SetCounters(counts)

	us.logger.Info("synced usage counters from redis",
		logger.Int("count", len(counts)))

	return nil
}
