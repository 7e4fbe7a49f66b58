package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/holytrinity/portal/internal/cache"
	"github.com/holytrinity/portal/internal/discord"
	"github.com/holytrinity/portal/internal/domain"
	"github.com/holytrinity/portal/internal/index"
	"github.com/holytrinity/portal/internal/logger"
	"github.com/holytrinity/portal/internal/minecraft"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Cache     *cache.Cache            // process-wide response cache
	Registry  *index.Registry         // configured communities
	Discord   *discord.Client         // nil when no bot token is configured
	Minecraft *minecraft.Client       // game-server status API
	Resolver  *domain.ProfileResolver // username -> uuid decoration

	RedisClient *redis.Client // nil when the profile cache is in-memory

	AnnouncementsTTL time.Duration // response cache TTL for announcements
	EventsTTL        time.Duration // response cache TTL for events
	GameTTL          time.Duration // response cache TTL for status/players

	AllowedOrigins []string      // CORS origins for the public feeds
	AllowedHosts   []string      // Host headers allowed on operational endpoints
	AllowedCIDRS   []string      // IPs allowed on operational endpoints
	TrustProxy     bool          // true if running behind a trusted reverse proxy
	ReloadTrigger  chan struct{} // channel to trigger manual community reload
}

// Now returns the current time via TimeNow, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
