package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leaguehub/leaguehub/internal/index"
	"github.com/leaguehub/leaguehub/internal/logger"
	"github.com/leaguehub/leaguehub/internal/notify"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	AllowedHosts   []string // Host headers allowed on mutating/infra endpoints
	AllowedCIDRS   []string // IPs allowed on infra endpoints
	AllowedOrigins []string // CORS origins allowed to read the API (empty = any)
	TrustProxy     bool     // true if running behind a trusted reverse proxy

	RedisClient *redis.Client      // nil when the snapshot archive is disabled
	MemoryIndex *index.MemoryIndex // in-memory content index, the primary source
	Notifier    notify.Notifier    // receives accepted event suggestions

	ReloadTrigger     chan struct{} // manual content reload
	NewsReloadTrigger chan struct{} // manual news feed reload (nil if news disabled)

	SuggestBurst        int // rate limit burst for POST /suggest
	SuggestRefillPerMin int // rate limit refill for POST /suggest
}
