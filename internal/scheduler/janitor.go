package scheduler

import (
	"context"
	"time"

	"github.com/wrenlabs/shortcuts/internal/logger"
	redisstore "github.com/wrenlabs/shortcuts/internal/store/redis"
)

const (
	// DefaultJournalMaxAge is the age after which journaled donations are swept
	DefaultJournalMaxAge = 30 * 24 * time.Hour // 30 days
)

// Janitor sweeps old donated interactions out of the journal. The
// assistant only needs recent signal to predict; stale entries are noise.
type Janitor struct {
	store    *redisstore.Store
	logger   logger.Logger
	interval time.Duration
	maxAge   time.Duration
	stopCh   chan struct{}
}

// NewJanitor creates a new journal janitor
func NewJanitor(
	store *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
	maxAge time.Duration,
) *Janitor {
	if maxAge == 0 {
		maxAge = DefaultJournalMaxAge
	}

	return &Janitor{
		store:    store,
		logger:   log,
		interval: interval,
		maxAge:   maxAge,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep process
func (j *Janitor) Start(ctx context.Context) error {
	// Run immediately on start
	if err := j.Sweep(ctx); err != nil {
		j.logger.Warn("initial journal sweep failed",
			logger.Error(err))
	}

	// Start periodic sweeps
	ticker := time.NewTicker(j.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := j.Sweep(ctx); err != nil {
					j.logger.Error("journal sweep failed",
						logger.Error(err))
				}
			case <-j.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the janitor
func (j *Janitor) Stop() {
	close(j.stopCh)
}

// Sweep removes interactions donated longer than maxAge ago
func (j *Janitor) Sweep(ctx context.Context) error {
	if j.store == nil {
		return nil
	}

	cutoff := time.Now().Add(-j.maxAge)

	deleted, err := j.store.SweepInteractions(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		j.logger.Info("swept old donated interactions",
			logger.Int("deleted", deleted),
			logger.String("older_than", j.maxAge.String()))
	} else {
		j.logger.Debug("no donated interactions to sweep")
	}

	return nil
}
