package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SourcesFile      string        // path to the sources.yaml file naming the content documents
	FetchTimeout     time.Duration // per-request timeout when fetching a content document
	ReloadInterval   time.Duration // interval to reload the content documents (default: 1h)
	NewsInterval     time.Duration // interval to refresh the announcement feed (default: 30m)
	JanitorInterval  time.Duration // interval to trim the generated changelog (default: 24h)
	ArchiveRetention time.Duration // how long generated changelog groups are kept (default: 180 days)

	// Redis (optional). Empty RedisAddr disables the snapshot archive;
	// the hub then diffs within a single process lifetime only.
	RedisAddr             string
	RedisUser             string
	RedisPassword         string
	RedisPasswordRequired bool
	RedisDB               int
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration // timeout for each ping attempt
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration // total time to retry connecting
	RedisRetryInterval    time.Duration // initial wait between retries, grows exponentially
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts   []string // optional, restrict /reload to specific Host headers
	AllowedCIDRS   []string // optional, restrict /infra and /reload to specific IPs
	AllowedOrigins []string // optional, restrict CORS reads to specific origins
	TrustProxy     bool     // true => trust X-Forwarded-For headers

	SuggestBurst        int // per-IP burst on POST /api/suggest
	SuggestRefillPerMin int // per-IP refill rate on POST /api/suggest
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("HUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("HUB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("HUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("HUB_PRETTY_LOG", true),

		// Content sources
		SourcesFile:      getenv("HUB_SOURCES_FILE", "/app/sources.yaml"),
		FetchTimeout:     mustDuration("HUB_FETCH_TIMEOUT", 10*time.Second),
		ReloadInterval:   mustDuration("HUB_RELOAD_SOURCE_INTERVAL", time.Hour),
		NewsInterval:     mustDuration("HUB_NEWS_INTERVAL", 30*time.Minute),
		JanitorInterval:  mustDuration("HUB_JANITOR_INTERVAL", 24*time.Hour),
		ArchiveRetention: mustDuration("HUB_ARCHIVE_RETENTION", 180*24*time.Hour),

		// Redis settings
		RedisAddr:             getenv("HUB_REDIS_ADDR", ""), // optional, empty = archive disabled
		RedisUser:             getenv("HUB_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("HUB_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("HUB_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("HUB_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts:   splitAndTrim(getenv("HUB_ALLOWED_HOSTS", "")),
		AllowedCIDRS:   splitAndTrim(getenv("HUB_ALLOWED_CIDRS", "")),
		AllowedOrigins: splitAndTrim(getenv("HUB_ALLOWED_ORIGINS", "")),
		TrustProxy:     mustBool("HUB_TRUST_PROXY", true),

		// Suggestion rate limit
		SuggestBurst:        getenvInt("HUB_SUGGEST_BURST", 5),
		SuggestRefillPerMin: getenvInt("HUB_SUGGEST_REFILL_PER_MIN", 2),
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("FATAL: HUB_REDIS_PASSWORD is required when HUB_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// ArchiveEnabled reports whether the Redis snapshot archive is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
