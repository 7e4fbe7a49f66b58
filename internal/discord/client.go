package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/holytrinity/portal/internal/upstream"
	"github.com/holytrinity/portal/internal/utils"
)

// DefaultBaseURL is the Discord REST API root.
const DefaultBaseURL = "https://discord.com/api/v10"

const serviceName = "discord"

// Client is a thin wrapper over the Discord REST API. It performs no
// retries; failures are normalized into upstream.Error and propagate
// immediately to the caller.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New creates a Discord client authenticating with a bot token.
// The timeout applies to every outbound call; expiry surfaces as a
// transport error.
func New(token string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// ChannelMessages fetches the most recent messages of a channel,
// newest first as returned by Discord.
func (c *Client) ChannelMessages(ctx context.Context, channelID string, limit int) ([]Message, error) {
	var messages []Message
	path := fmt.Sprintf("/channels/%s/messages?limit=%d", channelID, limit)
	if err := c.get(ctx, path, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// GuildChannels fetches all channels of a guild (mention resolution only).
func (c *Client) GuildChannels(ctx context.Context, guildID string) ([]Channel, error) {
	var channels []Channel
	if err := c.get(ctx, "/guilds/"+guildID+"/channels", &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// GuildRoles fetches all roles of a guild (mention resolution only).
func (c *Client) GuildRoles(ctx context.Context, guildID string) ([]Role, error) {
	var roles []Role
	if err := c.get(ctx, "/guilds/"+guildID+"/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// ScheduledEvents fetches the scheduled events of a guild, unfiltered.
func (c *Client) ScheduledEvents(ctx context.Context, guildID string) ([]ScheduledEvent, error) {
	var events []ScheduledEvent
	if err := c.get(ctx, "/guilds/"+guildID+"/scheduled-events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return upstream.Transport(serviceName, err)
	}
	req.Header.Set("Authorization", "Bot "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return upstream.Transport(serviceName, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstream.Classify(serviceName, resp.StatusCode, "request to "+path+" failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return upstream.Transport(serviceName, fmt.Errorf("decoding response from %s: %w", path, err))
	}
	return nil
}
