package config

import (
	"fmt"
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

	DiscordToken  string // bot token; empty disables the discord feeds
	CommunityFile string // path to the communities.yaml file

	UpstreamTimeout time.Duration // timeout on outbound API calls (default: 10s)
	ReloadInterval  time.Duration // interval to reload communities.yaml (default: 24h)
	JanitorInterval time.Duration // interval to prune stale cache entries (default: 1h)

	AnnouncementsTTL time.Duration // response cache TTL for announcements (default: 30s)
	EventsTTL        time.Duration // response cache TTL for events (default: 60s)
	GameTTL          time.Duration // response cache TTL for status/players (default: 30s)
	ProfileTTL       time.Duration // username -> uuid cache TTL (default: 24h)
	LookupDelay      time.Duration // spacing between mojang lookups (default: 100ms)

	// Redis (optional, backs the profile cache when set)
	RedisAddr             string        // ex: "localhost:6379", empty = in-memory profile cache
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password when redis is enabled
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedOrigins []string // CORS origins for the public feeds (empty = any)
	AllowedHosts   []string // optional, restrict operational endpoints to specific Host headers
	AllowedCIDRS   []string // optional, restrict operational endpoints to specific IPs
	TrustProxy     bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("PORTAL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("PORTAL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("PORTAL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PORTAL_PRETTY_LOG", true),

		// Upstream integrations
		DiscordToken:  getenv("DISCORD_BOT_TOKEN", ""),
		CommunityFile: requireEnv("PORTAL_COMMUNITY_FILE"),

		UpstreamTimeout: mustDuration("PORTAL_UPSTREAM_TIMEOUT", 10*time.Second),
		ReloadInterval:  mustDuration("PORTAL_RELOAD_INTERVAL", 24*time.Hour),
		JanitorInterval: mustDuration("PORTAL_JANITOR_INTERVAL", time.Hour),

		// Cache windows
		AnnouncementsTTL: mustDuration("PORTAL_ANNOUNCEMENTS_TTL", 30*time.Second),
		EventsTTL:        mustDuration("PORTAL_EVENTS_TTL", 60*time.Second),
		GameTTL:          mustDuration("PORTAL_GAME_TTL", 30*time.Second),
		ProfileTTL:       mustDuration("PORTAL_PROFILE_TTL", 24*time.Hour),
		LookupDelay:      mustDuration("PORTAL_LOOKUP_DELAY", 100*time.Millisecond),

		// Redis settings (optional)
		RedisAddr:             getenv("PORTAL_REDIS_ADDR", ""),
		RedisUser:             getenv("PORTAL_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("PORTAL_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("PORTAL_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("PORTAL_REDIS_DB", 0),
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
		AllowedOrigins: parseList(getenv("PORTAL_ALLOWED_ORIGINS", "")),
		AllowedHosts:   parseList(getenv("PORTAL_ALLOWED_HOSTS", "")),
		AllowedCIDRS:   parseList(getenv("PORTAL_ALLOWED_CIDRS", "")),
		TrustProxy:     mustBool("PORTAL_TRUST_PROXY", true),
	}

	// Validate Redis password configuration
	if cfg.RedisAddr != "" && cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: PORTAL_REDIS_PASSWORD is required when PORTAL_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.DiscordToken != "" {
			cfgCopy.DiscordToken = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
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

func parseList(s string) []string {
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
