package communities

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "communities.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeTempConfig(t, `
communities:
  socials:
    guild_id: "111"
    announcements_channel: "222"
  heavenly:
    guild_id: "333"
minecraft:
  default_server: "mc.example.com"
`)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(config.Communities) != 2 {
		t.Fatalf("got %d communities, want 2", len(config.Communities))
	}
	socials := config.Communities["socials"]
	if socials.GuildID != "111" || socials.AnnouncementsChannel != "222" {
		t.Errorf("socials = %+v", socials)
	}
	if config.Communities["heavenly"].AnnouncementsChannel != "" {
		t.Errorf("heavenly should have no announcements channel")
	}
	if config.Minecraft.DefaultServer != "mc.example.com" {
		t.Errorf("default server = %q", config.Minecraft.DefaultServer)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	if _, err := NewLoader("/nonexistent/communities.yaml").Load(); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoaderInvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "communities: [not: a: map")
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() should fail for invalid yaml")
	}
}

func TestMapperValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		count   int
	}{
		{
			name: "valid communities",
			config: &Config{Communities: map[string]CommunityProps{
				"a": {GuildID: "1", AnnouncementsChannel: "2"},
				"b": {GuildID: "3"},
			}},
			count: 2,
		},
		{
			name: "missing guild id rejected",
			config: &Config{Communities: map[string]CommunityProps{
				"a": {AnnouncementsChannel: "2"},
			}},
			wantErr: true,
		},
		{
			name:    "empty config rejected",
			config:  &Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			communities, err := NewMapper().MapCommunities(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MapCommunities() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(communities) != tt.count {
				t.Errorf("got %d communities, want %d", len(communities), tt.count)
			}
		})
	}
}
