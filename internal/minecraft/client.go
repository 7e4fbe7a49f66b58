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

// DefaultBaseURL is the mcsrvstat.us API root.
const DefaultBaseURL = "https://api.mcsrvstat.us"

// userAgent identifies the portal on third-party status APIs.
const userAgent = "Holy-Trinity-Portal/1.0"

const serviceName = "mcsrvstat"

// RawStatus is the upstream status payload before defaulting is applied.
type RawStatus struct {
	Online  bool `json:"online"`
	Players struct {
		Online int      `json:"online"`
		Max    int      `json:"max"`
		List   []string `json:"list"`
	} `json:"players"`
	MOTD struct {
		Clean []string `json:"clean"`
	} `json:"motd"`
	Version  string `json:"version"`
	Hostname string `json:"hostname"`
	Port     int    `json:"port"`
}

// Client queries the mcsrvstat.us server-status API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a status client with the given outbound timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// ServerStatus fetches the live status of a server by address.
func (c *Client) ServerStatus(ctx context.Context, server string) (*RawStatus, error) {
	endpoint := c.BaseURL + "/2/" + url.PathEscape(server)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, upstream.Transport(serviceName, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, upstream.Transport(serviceName, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstream.Classify(serviceName, resp.StatusCode, "status request for "+server+" failed")
	}

	var status RawStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, upstream.Transport(serviceName, err)
	}
	return &status, nil
}
