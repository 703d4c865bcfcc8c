package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wrenlabs/shortcuts/internal/activity"
	"github.com/wrenlabs/shortcuts/internal/dispatch"
	"github.com/wrenlabs/shortcuts/internal/httpserver/mw"
	"github.com/wrenlabs/shortcuts/internal/index"
	"github.com/wrenlabs/shortcuts/internal/intent"
	"github.com/wrenlabs/shortcuts/internal/logger"
	"github.com/wrenlabs/shortcuts/internal/shortcut"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	AllowedHosts []string // Host headers allowed to access the server
	AllowedCIDRS []string // IPs allowed to access healthz/readyz/reload endpoints
	TrustProxy   bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)

	RedisClient *redis.Client      // Redis client connection (donation journal + usage counters)
	MemoryIndex *index.MemoryIndex // In-memory activity record index
	Catalog     *shortcut.Catalog  // Shortcut catalog (built-in text + locale overrides)
	Builder     *activity.Builder  // Activity record builder over the catalog
	Dispatcher  *dispatch.Dispatcher
	Donor       *intent.Donor

	LocaleReloadTrigger chan struct{} // Channel to trigger manual locale reload

	RateLimit mw.RateLimitConfig // token bucket settings for perform/donate endpoints
}
