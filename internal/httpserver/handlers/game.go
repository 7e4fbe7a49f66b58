package handlers

import (
	"net/http"
	"strings"

	"github.com/holytrinity/portal/internal/cache"
	"github.com/holytrinity/portal/internal/domain"
	"github.com/holytrinity/portal/internal/httpserver/deps"
)

// serverAddress resolves the target server from the query string, falling
// back to the configured default. Empty means the caller gets a 400.
func serverAddress(d deps.Deps, r *http.Request) string {
	if server := strings.TrimSpace(r.URL.Query().Get("server")); server != "" {
		return server
	}
	return d.Registry.DefaultServer()
}

func GameStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		server := serverAddress(d, r)
		if server == "" {
			writeError(w, http.StatusBadRequest, "Server address is required", "")
			return
		}

		key := "status:" + server
		status, err := cache.GetOrFetch(d.Cache, key, d.GameTTL, func() (domain.ServerStatus, error) {
			raw, err := d.Minecraft.ServerStatus(r.Context(), server)
			if err != nil {
				return domain.ServerStatus{}, err
			}
			return domain.NormalizeStatus(raw, server), nil
		})
		if err != nil {
			writeFetchError(d, w, "server status", err)
			return
		}

		w.Header().Set("Cache-Control", "s-maxage=30, stale-while-revalidate=60")
		writeJSON(w, http.StatusOK, status)
	}
}

func GamePlayers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		server := serverAddress(d, r)
		if server == "" {
			writeError(w, http.StatusBadRequest, "Server address is required", "")
			return
		}

		key := "players:" + server
		list, err := cache.GetOrFetch(d.Cache, key, d.GameTTL, func() (domain.PlayerList, error) {
			raw, err := d.Minecraft.ServerStatus(r.Context(), server)
			if err != nil {
				return domain.PlayerList{}, err
			}

			// Offline server: empty list, and no profile lookups at all.
			if !raw.Online {
				return domain.PlayerList{Players: []domain.Player{}, Count: 0}, nil
			}

			players := d.Resolver.Resolve(r.Context(), raw.Players.List)
			return domain.PlayerList{Players: players, Count: len(players)}, nil
		})
		if err != nil {
			writeFetchError(d, w, "player list", err)
			return
		}

		w.Header().Set("Cache-Control", "s-maxage=30, stale-while-revalidate=60")
		writeJSON(w, http.StatusOK, list)
	}
}
