package domain

import (
	"context"
	"time"

	"github.com/holytrinity/portal/internal/logger"
	"github.com/holytrinity/portal/internal/minecraft"
)

// MaxPlayers caps the player list to stay under Mojang rate limits.
const MaxPlayers = 20

// DefaultLookupDelay spaces successive Mojang lookups. Resolution is
// deliberately sequential with this gap; do not parallelize it.
const DefaultLookupDelay = 100 * time.Millisecond

// Player is one player-list entry. UUID and avatar are best-effort.
type Player struct {
	Name   string `json:"name"`
	UUID   string `json:"uuid,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// PlayerList is the players endpoint payload.
type PlayerList struct {
	Players []Player `json:"players"`
	Count   int      `json:"count"`
}

// ProfileCache is the long-lived username -> UUID cache consulted before
// any Mojang call. Implementations normalize usernames to lowercase.
type ProfileCache interface {
	GetProfile(ctx context.Context, username string) (string, error)
	SaveProfile(ctx context.Context, username, uuid string) error
}

// ProfileLookup resolves a username upstream. A nil profile with nil error
// means the name is unknown.
type ProfileLookup interface {
	Lookup(ctx context.Context, username string) (*minecraft.Profile, error)
}

// ProfileResolver decorates player names with UUIDs and avatar URLs.
type ProfileResolver struct {
	lookup ProfileLookup
	cache  ProfileCache
	delay  time.Duration
	sleep  func(time.Duration)
	log    logger.Logger
}

// NewProfileResolver creates a resolver. A zero delay falls back to
// DefaultLookupDelay; sleep is replaceable for tests.
func NewProfileResolver(lookup ProfileLookup, cache ProfileCache, delay time.Duration, log logger.Logger) *ProfileResolver {
	if delay <= 0 {
		delay = DefaultLookupDelay
	}
	return &ProfileResolver{
		lookup: lookup,
		cache:  cache,
		delay:  delay,
		sleep:  time.Sleep,
		log:    log,
	}
}

// Resolve builds the player list for the given names, capped to MaxPlayers.
// Lookups run one at a time with a fixed delay between upstream calls;
// cache hits do not consume a delay slot. Every failure is logged and the
// player is kept without uuid/avatar.
func (r *ProfileResolver) Resolve(ctx context.Context, names []string) []Player {
	if len(names) > MaxPlayers {
		names = names[:MaxPlayers]
	}

	players := make([]Player, 0, len(names))
	calls := 0

	for _, name := range names {
		player := Player{Name: name}

		uuid, err := r.cachedUUID(ctx, name)
		if err != nil {
			r.log.Warn("profile cache read failed",
				logger.String("player", name),
				logger.Error(err))
		}

		if uuid == "" {
			if calls > 0 {
				r.sleep(r.delay)
			}
			calls++

			profile, err := r.lookup.Lookup(ctx, name)
			if err != nil {
				r.log.Warn("profile lookup failed",
					logger.String("player", name),
					logger.Error(err))
			} else if profile != nil {
				uuid = profile.ID
				if err := r.cache.SaveProfile(ctx, name, uuid); err != nil {
					r.log.Warn("profile cache write failed",
						logger.String("player", name),
						logger.Error(err))
				}
			}
		}

		if uuid != "" {
			player.UUID = uuid
			player.Avatar = minecraft.AvatarURL(uuid)
		}
		players = append(players, player)
	}

	return players
}

func (r *ProfileResolver) cachedUUID(ctx context.Context, name string) (string, error) {
	if r.cache == nil {
		return "", nil
	}
	return r.cache.GetProfile(ctx, name)
}
