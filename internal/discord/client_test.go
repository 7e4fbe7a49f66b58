package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/holytrinity/portal/internal/upstream"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New("test-token", 2*time.Second)
	c.BaseURL = srv.URL
	return c
}

func TestChannelMessages(t *testing.T) {
	var gotAuth, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"1","content":"hello","author":{"id":"9","username":"alice","discriminator":"0"},"timestamp":"2026-01-01T00:00:00Z","pinned":true},
			{"id":"2","content":"","author":{"id":"9","username":"alice","discriminator":"0"},"timestamp":"2026-01-01T00:00:01Z","pinned":false}
		]`))
	})

	messages, err := c.ChannelMessages(context.Background(), "chan1", 10)
	if err != nil {
		t.Fatalf("ChannelMessages() error = %v", err)
	}
	if gotAuth != "Bot test-token" {
		t.Errorf("Authorization = %q, want bot token header", gotAuth)
	}
	if gotPath != "/channels/chan1/messages?limit=10" {
		t.Errorf("path = %q", gotPath)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0].Author.Username != "alice" || !messages[0].Pinned {
		t.Errorf("first message parsed wrong: %+v", messages[0])
	}
}

func TestClientErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind upstream.Kind
	}{
		{"invalid token", http.StatusUnauthorized, upstream.Unauthorized},
		{"missing permission", http.StatusForbidden, upstream.Forbidden},
		{"unknown channel", http.StatusNotFound, upstream.NotFound},
		{"rate limited", http.StatusTooManyRequests, upstream.UpstreamError},
		{"discord down", http.StatusInternalServerError, upstream.UpstreamError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := c.ChannelMessages(context.Background(), "chan1", 10)
			ue, ok := upstream.As(err)
			if !ok {
				t.Fatalf("error %v is not an upstream.Error", err)
			}
			if ue.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", ue.Kind, tt.wantKind)
			}
			if ue.Status != tt.status {
				t.Errorf("Status = %d, want %d", ue.Status, tt.status)
			}
		})
	}
}

func TestClientTransportError(t *testing.T) {
	c := New("token", 100*time.Millisecond)
	c.BaseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := c.GuildRoles(context.Background(), "g1")
	ue, ok := upstream.As(err)
	if !ok {
		t.Fatalf("error %v is not an upstream.Error", err)
	}
	if ue.Kind != upstream.TransportError {
		t.Errorf("Kind = %v, want TransportError", ue.Kind)
	}
}

func TestMentionTables(t *testing.T) {
	channels := ChannelTable([]Channel{{ID: "1", Name: "general"}, {ID: "2", Name: "dev"}})
	if channels["2"] != "dev" {
		t.Errorf("ChannelTable lookup failed: %v", channels)
	}
	roles := RoleTable([]Role{{ID: "7", Name: "admin"}})
	if roles["7"] != "admin" {
		t.Errorf("RoleTable lookup failed: %v", roles)
	}
}
