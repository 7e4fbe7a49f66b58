package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/holytrinity/portal/internal/cache"
	"github.com/holytrinity/portal/internal/discord"
	"github.com/holytrinity/portal/internal/domain"
	"github.com/holytrinity/portal/internal/httpserver/deps"
	"github.com/holytrinity/portal/internal/logger"
)

// messagesFetchLimit is how many messages are requested upstream before
// filtering; the feed itself is capped at domain.MaxAnnouncements.
const messagesFetchLimit = 10

func Announcements(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		community, ok := d.Registry.Get(chi.URLParam(r, "community"))
		if !ok {
			writeError(w, http.StatusNotFound, "Unknown community", "")
			return
		}
		if d.Discord == nil || !community.CanServeAnnouncements() {
			writeError(w, http.StatusInternalServerError,
				"Discord configuration missing",
				"DISCORD_BOT_TOKEN and announcements_channel must be set")
			return
		}

		key := "announcements:" + community.Name
		feed, err := cache.GetOrFetch(d.Cache, key, d.AnnouncementsTTL, func() (domain.AnnouncementsFeed, error) {
			return fetchAnnouncements(r.Context(), d, community.GuildID, community.AnnouncementsChannel)
		})
		if err != nil {
			writeFetchError(d, w, "announcements", err)
			return
		}

		w.Header().Set("Cache-Control", "s-maxage=30, stale-while-revalidate=60")
		writeJSON(w, http.StatusOK, feed)
	}
}

func fetchAnnouncements(ctx context.Context, d deps.Deps, guildID, channelID string) (domain.AnnouncementsFeed, error) {
	messages, err := d.Discord.ChannelMessages(ctx, channelID, messagesFetchLimit)
	if err != nil {
		return domain.AnnouncementsFeed{}, err
	}

	mentions := fetchMentionTable(ctx, d, guildID)
	return domain.AnnouncementsFeed{
		Messages: domain.BuildAnnouncements(messages, mentions),
		Mentions: mentions,
	}, nil
}

// fetchMentionTable loads the channel and role lookup tables for mention
// resolution. Both calls are independent and run concurrently; either one
// failing just leaves its table empty. The primary request never fails
// because of them.
func fetchMentionTable(ctx context.Context, d deps.Deps, guildID string) *discord.MentionTable {
	mentions := &discord.MentionTable{
		Channels: map[string]string{},
		Roles:    map[string]string{},
	}
	if guildID == "" {
		return mentions
	}

	var g errgroup.Group
	g.Go(func() error {
		channels, err := d.Discord.GuildChannels(ctx, guildID)
		if err != nil {
			d.Logger.Warn("guild channel lookup failed, mentions degrade to placeholders",
				logger.String("guild", guildID),
				logger.Error(err))
			return nil
		}
		mentions.Channels = discord.ChannelTable(channels)
		return nil
	})
	g.Go(func() error {
		roles, err := d.Discord.GuildRoles(ctx, guildID)
		if err != nil {
			d.Logger.Warn("guild role lookup failed, mentions degrade to placeholders",
				logger.String("guild", guildID),
				logger.Error(err))
			return nil
		}
		mentions.Roles = discord.RoleTable(roles)
		return nil
	})
	_ = g.Wait()

	return mentions
}
