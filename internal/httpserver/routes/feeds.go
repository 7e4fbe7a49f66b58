package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/holytrinity/portal/internal/httpserver/deps"
	"github.com/holytrinity/portal/internal/httpserver/handlers"
	"github.com/holytrinity/portal/internal/httpserver/mw"
)

func init() { Register(registerFeeds) }

// registerFeeds mounts the public JSON feeds. All of them sit behind one
// per-IP limiter: the clients are fixed-interval pollers, so anything
// past a gentle budget is abuse rather than load.
func registerFeeds(r chi.Router, d deps.Deps) {
	public := r.With(
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             30,
			RefillPerIPPerMin: 60,
			MaxEntries:        8192,
			SweepInterval:     time.Minute,
			IdleTTL:           15 * time.Minute,
			TrustProxy:        d.TrustProxy,
		}),
		mw.CORS(d.AllowedOrigins),
	)

	public.Get("/api/game/status", handlers.GameStatus(d))
	public.Get("/api/game/players", handlers.GamePlayers(d))
	public.Get("/api/game/leaderboard", handlers.Leaderboard(d))

	// Param routes last; chi prefers the static /api/game segment above.
	public.Get("/api/{community}/announcements", handlers.Announcements(d))
	public.Get("/api/{community}/events", handlers.Events(d))

	// Preflights must route through the CORS middleware; chi answers
	// unregistered methods with 405 before inline middlewares run. The
	// middleware short-circuits OPTIONS, so the handler is never reached.
	public.Options("/api/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
