package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/holytrinity/portal/internal/cache"
	"github.com/holytrinity/portal/internal/discord"
	"github.com/holytrinity/portal/internal/domain"
	"github.com/holytrinity/portal/internal/httpserver/deps"
)

func Events(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		community, ok := d.Registry.Get(chi.URLParam(r, "community"))
		if !ok {
			writeError(w, http.StatusNotFound, "Unknown community", "")
			return
		}
		if d.Discord == nil {
			writeError(w, http.StatusInternalServerError,
				"Discord configuration missing",
				"DISCORD_BOT_TOKEN must be set")
			return
		}

		key := "events:" + community.Name
		events, err := cache.GetOrFetch(d.Cache, key, d.EventsTTL, func() ([]discord.ScheduledEvent, error) {
			all, err := d.Discord.ScheduledEvents(r.Context(), community.GuildID)
			if err != nil {
				return nil, err
			}
			return domain.UpcomingEvents(all, d.Now()), nil
		})
		if err != nil {
			writeFetchError(d, w, "events", err)
			return
		}

		w.Header().Set("Cache-Control", "s-maxage=60, stale-while-revalidate=120")
		writeJSON(w, http.StatusOK, events)
	}
}
