package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/wrenlabs/shortcuts/internal/activity"
	"github.com/wrenlabs/shortcuts/internal/index"
	"github.com/wrenlabs/shortcuts/internal/logger"
	"github.com/wrenlabs/shortcuts/internal/shortcut"
	"github.com/wrenlabs/shortcuts/internal/sources/locale"
)

// LocaleReloader handles periodic reloading of the shortcut locale file.
// Each reload rebuilds the activity records so the search index always
// reflects the active catalog text.
type LocaleReloader struct {
	loader        *locale.Loader
	mapper        *locale.Mapper
	catalog       *shortcut.Catalog
	builder       *activity.Builder
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewLocaleReloader creates a new locale reloader.
// localeFile may be empty; the catalog then serves built-in text and the
// reload only registers the default activity records.
func NewLocaleReloader(
	localeFile string,
	catalog *shortcut.Catalog,
	builder *activity.Builder,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *LocaleReloader {
	var loader *locale.Loader
	if localeFile != "" {
		loader = locale.NewLoader(localeFile)
	}

	return &LocaleReloader{
		loader:        loader,
		mapper:        locale.NewMapper(),
		catalog:       catalog,
		builder:       builder,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic reload process
func (lr *LocaleReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := lr.Reload(ctx); err != nil {
		return fmt.Errorf("initial locale load failed: %w", err)
	}

	// Start periodic reload
	ticker := time.NewTicker(lr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := lr.Reload(ctx); err != nil {
					lr.logger.Error("failed to reload locale",
						logger.Error(err))
				}
			case <-lr.manualTrigger:
				lr.logger.Info("manual locale reload triggered")
				if err := lr.Reload(ctx); err != nil {
					lr.logger.Error("failed to reload locale",
						logger.Error(err))
				}
			case <-lr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (lr *LocaleReloader) Stop() {
	close(lr.stopCh)
}

// Reload applies the locale file to the catalog and re-registers the
// activity records in the memory index.
func (lr *LocaleReloader) Reload(ctx context.Context) error {
	if lr.loader != nil {
		config, err := lr.loader.Load()
		if err != nil {
			return fmt.Errorf("failed to load locale: %w", err)
		}

		overrides, unknown := lr.mapper.MapOverrides(config)
		for _, slug := range unknown {
			lr.logger.Warn("locale file references unknown action",
				logger.String("slug", slug))
		}

		lr.catalog.SetOverrides(overrides)
		lr.logger.Info("applied locale overrides",
			logger.Int("count", len(overrides)))
	}

	records := lr.builder.BuildAll()
	lr.index.UpdateRecords(records)

	lr.logger.Info("activity records registered",
		logger.Int("count", len(records)))

	return nil
}
