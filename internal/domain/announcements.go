package domain

import (
	"strings"

	"github.com/holytrinity/portal/internal/discord"
)

// MaxAnnouncements caps the announcements feed.
const MaxAnnouncements = 5

// Announcement is one mirrored message, ready for display.
type Announcement struct {
	ID          string               `json:"id"`
	Content     string               `json:"content"`
	Author      discord.Author       `json:"author"`
	AvatarURL   string               `json:"avatar_url"`
	Timestamp   string               `json:"timestamp"`
	Pinned      bool                 `json:"pinned"`
	Attachments []discord.Attachment `json:"attachments,omitempty"`
}

// AnnouncementsFeed is the announcements endpoint payload. The mention
// table rides along so clients can deep-link resolved entities.
type AnnouncementsFeed struct {
	Messages []Announcement        `json:"messages"`
	Mentions *discord.MentionTable `json:"mentions"`
}

// BuildAnnouncements filters out messages whose raw content trims to
// empty, caps the survivors to MaxAnnouncements preserving upstream order
// (newest first), and resolves mention tokens in each survivor's content.
func BuildAnnouncements(messages []discord.Message, mentions *discord.MentionTable) []Announcement {
	announcements := make([]Announcement, 0, MaxAnnouncements)

	for _, msg := range messages {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}

		announcements = append(announcements, Announcement{
			ID:          msg.ID,
			Content:     discord.Sanitize(msg.Content, discord.ModeResolve, mentions),
			Author:      msg.Author,
			AvatarURL:   discord.AvatarURL(msg.Author, 64),
			Timestamp:   msg.Timestamp,
			Pinned:      msg.Pinned,
			Attachments: msg.Attachments,
		})

		if len(announcements) == MaxAnnouncements {
			break
		}
	}

	return announcements
}
