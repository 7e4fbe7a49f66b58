package memory

import (
	"context"
	"testing"
	"time"
)

func TestProfileStoreRoundTrip(t *testing.T) {
	s := NewProfileStore(24*time.Hour, nil)
	ctx := context.Background()

	if err := s.SaveProfile(ctx, "Steve", "uuid-1"); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	// Usernames are case-insensitive.
	for _, name := range []string{"Steve", "steve", "STEVE"} {
		got, err := s.GetProfile(ctx, name)
		if err != nil {
			t.Fatalf("GetProfile(%q): %v", name, err)
		}
		if got != "uuid-1" {
			t.Errorf("GetProfile(%q) = %q, want uuid-1", name, got)
		}
	}
}

func TestProfileStoreMiss(t *testing.T) {
	s := NewProfileStore(24*time.Hour, nil)
	got, err := s.GetProfile(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got != "" {
		t.Errorf("miss should return empty uuid, got %q", got)
	}
}

func TestProfileStoreExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := NewProfileStore(24*time.Hour, clock)
	ctx := context.Background()

	if err := s.SaveProfile(ctx, "steve", "uuid-1"); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	now = now.Add(24*time.Hour - time.Second)
	if got, _ := s.GetProfile(ctx, "steve"); got != "uuid-1" {
		t.Errorf("entry expired early, got %q", got)
	}

	now = now.Add(2 * time.Second)
	if got, _ := s.GetProfile(ctx, "steve"); got != "" {
		t.Errorf("entry should have expired, got %q", got)
	}
}
