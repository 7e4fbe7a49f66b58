package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/holytrinity/portal/internal/httpserver/deps"
)

type componentStatus struct {
	OK                bool   `json:"ok"`
	CommunitiesLoaded *int   `json:"communities_loaded,omitempty"`
	CacheEntries      *int   `json:"cache_entries,omitempty"`
	LastReload        string `json:"last_reload,omitempty"`
	Mode              string `json:"mode,omitempty"`
	Error             string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		communityCount := d.Registry.Count()
		lastReload := d.Registry.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		cacheEntries := d.Cache.Len()

		components := map[string]componentStatus{
			"communities": {
				OK:                communityCount > 0,
				CommunitiesLoaded: &communityCount,
				LastReload:        lastReloadStr,
			},
			"response_cache": {
				OK:           true,
				CacheEntries: &cacheEntries,
			},
			"profile_cache": checkProfileCache(d),
			"discord": {
				OK:   d.Discord != nil,
				Mode: discordMode(d),
			},
		}

		response := infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func discordMode(d deps.Deps) string {
	if d.Discord == nil {
		return "unconfigured"
	}
	return "bot-token"
}

func determineServingMode(components map[string]componentStatus) string {
	if c, exists := components["communities"]; exists && !c.OK {
		return "critical" // no communities loaded, discord feeds all 404
	}
	if c, exists := components["discord"]; exists && !c.OK {
		return "degraded" // game feeds only
	}
	if c, exists := components["profile_cache"]; exists && !c.OK {
		return "degraded" // player avatars hammer mojang without it
	}
	return "nominal"
}

func checkProfileCache(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		// In-memory fallback is a valid deployment, not a failure.
		return componentStatus{
			OK:   true,
			Mode: "memory",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:    false,
			Mode:  "redis",
			Error: err.Error(),
		}
	}

	return componentStatus{
		OK:   true,
		Mode: "redis",
	}
}
