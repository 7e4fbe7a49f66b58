package minecraft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/holytrinity/portal/internal/upstream"
	"github.com/holytrinity/portal/internal/utils"
)

// DefaultMojangBaseURL is the Mojang profile API root.
const DefaultMojangBaseURL = "https://api.mojang.com"

const mojangService = "mojang"

// Profile is a resolved Mojang account.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MojangClient resolves usernames to account UUIDs.
type MojangClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewMojangClient creates a profile client with the given outbound timeout.
func NewMojangClient(timeout time.Duration) *MojangClient {
	return &MojangClient{
		BaseURL:    DefaultMojangBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Lookup resolves a username to its profile. An unknown username returns
// (nil, nil); callers treat that the same as any other resolution miss.
func (c *MojangClient) Lookup(ctx context.Context, username string) (*Profile, error) {
	endpoint := c.BaseURL + "/users/profiles/minecraft/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, upstream.Transport(mojangService, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, upstream.Transport(mojangService, err)
	}
	defer utils.Close(resp.Body)

	// Mojang answers 404 (historically 204) for unknown usernames.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstream.Classify(mojangService, resp.StatusCode, "profile lookup for "+username+" failed")
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, upstream.Transport(mojangService, err)
	}
	return &profile, nil
}

// AvatarURL builds the crafatar head-render URL for an account UUID.
func AvatarURL(uuid string) string {
	return "https://crafatar.com/avatars/" + uuid + "?size=64&default=MHF_Steve"
}
