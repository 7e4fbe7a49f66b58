package domain

// Community is one Discord community served by the portal. Each community
// is a data-driven instance of the same feed logic; ids come from the
// communities file, never from code.
type Community struct {
	Name                 string // registry key, also the URL segment
	GuildID              string // Discord guild id, required
	AnnouncementsChannel string // channel mirrored on the announcements feed
}

// CanServeAnnouncements reports whether the announcements feed is
// configured for this community.
func (c *Community) CanServeAnnouncements() bool {
	return c.AnnouncementsChannel != ""
}
