package discord

// Author is the subset of a Discord user attached to a message.
type Author struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar,omitempty"`
	Discriminator string `json:"discriminator"`
}

// Attachment is a file attached to a message.
type Attachment struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
}

// Message is one chat message mirrored from a channel. Fetched read-only,
// never mutated or persisted; held only for the duration of a cache window.
type Message struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	Author      Author       `json:"author"`
	Timestamp   string       `json:"timestamp"`
	Pinned      bool         `json:"pinned"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// ScheduledEvent is a future or ongoing community event.
type ScheduledEvent struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	ScheduledStartTime string          `json:"scheduled_start_time"`
	ScheduledEndTime   string          `json:"scheduled_end_time,omitempty"`
	EntityMetadata     *EntityMetadata `json:"entity_metadata,omitempty"`
	UserCount          int             `json:"user_count,omitempty"`
	Image              string          `json:"image,omitempty"`
}

// EntityMetadata carries optional location info for an event.
type EntityMetadata struct {
	Location string `json:"location,omitempty"`
}

// Channel is a guild channel, used only to build mention lookup tables.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Role is a guild role, used only to build mention lookup tables.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MentionTable maps entity ids to display names for one guild.
// Rebuilt wholesale on every cache refresh, never updated incrementally.
type MentionTable struct {
	Channels map[string]string `json:"channels"`
	Users    map[string]string `json:"users,omitempty"`
	Roles    map[string]string `json:"roles"`
}

// ChannelTable converts a channel list into an id -> name map.
func ChannelTable(channels []Channel) map[string]string {
	table := make(map[string]string, len(channels))
	for _, c := range channels {
		table[c.ID] = c.Name
	}
	return table
}

// RoleTable converts a role list into an id -> name map.
func RoleTable(roles []Role) map[string]string {
	table := make(map[string]string, len(roles))
	for _, r := range roles {
		table[r.ID] = r.Name
	}
	return table
}
