package communities

// Config represents the top-level structure of communities.yaml.
type Config struct {
	Communities map[string]CommunityProps `yaml:"communities"`
	Minecraft   MinecraftProps            `yaml:"minecraft,omitempty"`
}

// CommunityProps contains the per-community Discord identifiers.
type CommunityProps struct {
	GuildID              string `yaml:"guild_id"`
	AnnouncementsChannel string `yaml:"announcements_channel,omitempty"`
}

// MinecraftProps holds optional game-server settings.
type MinecraftProps struct {
	DefaultServer string `yaml:"default_server,omitempty"`
}
