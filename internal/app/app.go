package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/wrenlabs/shortcuts/internal/activity"
	"github.com/wrenlabs/shortcuts/internal/browser"
	"github.com/wrenlabs/shortcuts/internal/config"
	"github.com/wrenlabs/shortcuts/internal/dispatch"
	"github.com/wrenlabs/shortcuts/internal/httpserver"
	"github.com/wrenlabs/shortcuts/internal/httpserver/deps"
	"github.com/wrenlabs/shortcuts/internal/httpserver/mw"
	"github.com/wrenlabs/shortcuts/internal/index"
	"github.com/wrenlabs/shortcuts/internal/intent"
	"github.com/wrenlabs/shortcuts/internal/logger"
	"github.com/wrenlabs/shortcuts/internal/metrics"
	"github.com/wrenlabs/shortcuts/internal/redis"
	"github.com/wrenlabs/shortcuts/internal/scheduler"
	"github.com/wrenlabs/shortcuts/internal/shortcut"
	redisstore "github.com/wrenlabs/shortcuts/internal/store/redis"
	"github.com/wrenlabs/shortcuts/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	donor       *intent.Donor
	reloader    *scheduler.LocaleReloader
	janitor     *scheduler.Janitor
}

// instrumentedAssistant wraps the journal so failed submissions also
// bump the donation error counter. The error still propagates, so the
// donor keeps its single error log line per failed donation.
type instrumentedAssistant struct {
	next intent.Assistant
}

func (a *instrumentedAssistant) Submit(ctx context.Context, interaction intent.Interaction) error {
	err := a.next.Submit(ctx, interaction)
	if err != nil {
		metrics.RecordDonationError()
	}
	return err
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	metrics.Init()

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Catalog, activity builder and in-memory index
	catalog := shortcut.NewCatalog()
	builder := activity.NewBuilder(catalog)
	memIndex := index.NewMemoryIndex()

	// Redis store: donation journal + usage counters
	store := redisstore.NewStore(redisClient)

	// Restore prediction counters from Redis on startup
	syncer := scheduler.NewUsageSyncer(store, memIndex, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to sync usage counters from redis on startup",
			logger.Error(err))
	}

	// Donation pipeline: donor -> instrumented journal -> Redis
	journal := redisstore.NewJournal(store)
	donor := intent.NewDonor(&instrumentedAssistant{next: journal}, loggerClient)

	// Browser collaborators
	session := browser.NewSession()
	vpnPhase, err := browser.ParseVPNPhase(cfg.VPNPhase)
	if err != nil {
		loggerClient.Warnf("invalid vpn phase %q, defaulting to not-purchased", cfg.VPNPhase)
		vpnPhase = browser.VPNNotPurchased
	}
	vpn := browser.NewStubVPN(browser.VPNState{Phase: vpnPhase, Connected: cfg.VPNConnected})
	settings := browser.NewSettingsLog(loggerClient)

	dispatcher := dispatch.New(session, session, session, vpn, settings, loggerClient)

	// Create manual reload trigger channel
	localeReloadTrigger := make(chan struct{}, 1)

	// Locale reloader registers the activity records and keeps the
	// catalog text in sync with the locale file (if configured).
	reloader := scheduler.NewLocaleReloader(
		cfg.LocaleFile,
		catalog,
		builder,
		memIndex,
		loggerClient,
		cfg.ReloadInterval,
		localeReloadTrigger,
	)

	// Janitor sweeps aged-out journal entries
	janitor := scheduler.NewJanitor(
		store,
		loggerClient,
		cfg.JanitorInterval,
		cfg.JanitorMaxAge,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		RedisClient:  redisClient,
		MemoryIndex:  memIndex,
		Catalog:      catalog,
		Builder:      builder,
		Dispatcher:   dispatcher,
		Donor:        donor,

		LocaleReloadTrigger: localeReloadTrigger,

		RateLimit: mw.RateLimitConfig{
			Burst:             cfg.RateLimitBurst,
			RefillPerIPPerMin: cfg.RateLimitPerMin,
			TrustProxy:        cfg.TrustProxy,
		},
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memIndex:    memIndex,
		donor:       donor,
		reloader:    reloader,
		janitor:     janitor,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting shortcutsd v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("shortcutsd %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start locale reloader (registers activity records, starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start locale reloader: %w", err)
	}
	a.logger.Info("locale reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	// Start journal janitor
	if err := a.janitor.Start(ctx); err != nil {
		return fmt.Errorf("failed to start journal janitor: %w", err)
	}
	a.logger.Info("journal janitor started",
		logger.Duration("interval", a.cfg.JanitorInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop schedulers
	a.reloader.Stop()
	a.janitor.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Drain in-flight donations before tearing down Redis
	a.donor.Close()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ shortcutsd stopped cleanly")
	return nil
}
