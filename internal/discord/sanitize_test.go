package discord

import (
	"strings"
	"testing"
)

func testTable() *MentionTable {
	return &MentionTable{
		Channels: map[string]string{"111": "general", "222": "announcements"},
		Users:    map[string]string{"333": "alice"},
		Roles:    map[string]string{"444": "moderator"},
	}
}

func TestSanitizeResolve(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "plain text untouched",
			content: "server maintenance tonight",
			want:    "server maintenance tonight",
		},
		{
			name:    "static emote removed",
			content: "welcome <:wave:123456789> everyone",
			want:    "welcome everyone",
		},
		{
			name:    "animated emote removed",
			content: "party time <a:dance:987654321>",
			want:    "party time",
		},
		{
			name:    "known channel mention",
			content: "check <#111> for details",
			want:    "check #general for details",
		},
		{
			name:    "unknown channel mention",
			content: "check <#999> for details",
			want:    "check #unknown-channel for details",
		},
		{
			name:    "user mention with nickname marker",
			content: "thanks <@!333>",
			want:    "thanks @alice",
		},
		{
			name:    "unknown user mention",
			content: "thanks <@777>",
			want:    "thanks @unknown-user",
		},
		{
			name:    "known role mention",
			content: "ping <@&444> please",
			want:    "ping @moderator please",
		},
		{
			name:    "unknown role mention",
			content: "ping <@&888> please",
			want:    "ping @unknown-role please",
		},
		{
			name:    "whitespace collapsed",
			content: "line one\n\nline   two\t end ",
			want:    "line one line two end",
		},
		{
			name:    "everything combined",
			content: "<a:hype:1> Event in <#222>!\nThanks <@333> and <@&444>",
			want:    "Event in #announcements! Thanks @alice and @moderator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.content, ModeResolve, testTable())
			if got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeStrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "channel mention becomes generic",
			content: "see <#111>",
			want:    "see #channel",
		},
		{
			name:    "user mention becomes generic",
			content: "hi <@333> and <@!333>",
			want:    "hi @user and @user",
		},
		{
			name:    "role mention becomes generic",
			content: "for <@&444> only",
			want:    "for @role only",
		},
		{
			name:    "emotes still removed",
			content: "gg <:win:42> everyone",
			want:    "gg everyone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Strip mode never consults the table.
			got := Sanitize(tt.content, ModeStrip, nil)
			if got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeNilTable(t *testing.T) {
	got := Sanitize("hello <#111> <@333> <@&444>", ModeResolve, nil)
	want := "hello #unknown-channel @unknown-user @unknown-role"
	if got != want {
		t.Errorf("Sanitize() with nil table = %q, want %q", got, want)
	}
}

func TestSanitizeNeverLeaksRawTokens(t *testing.T) {
	inputs := []string{
		"<#123>",
		"<@456>",
		"<@!456>",
		"<@&789>",
		"<:emote:1> <a:emote:2>",
		"mixed <#1><@2><@&3><:x:4>",
	}
	for _, in := range inputs {
		for _, mode := range []Mode{ModeResolve, ModeStrip} {
			out := Sanitize(in, mode, testTable())
			if strings.Contains(out, "<") {
				t.Errorf("Sanitize(%q, mode %d) leaked raw token: %q", in, mode, out)
			}
		}
	}
}

func TestAvatarURL(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{
			name:   "custom avatar hash",
			author: Author{ID: "42", Avatar: "abc123", Discriminator: "0"},
			want:   "https://cdn.discordapp.com/avatars/42/abc123.png?size=64",
		},
		{
			name:   "legacy discriminator fallback",
			author: Author{ID: "42", Discriminator: "1337"},
			want:   "https://cdn.discordapp.com/embed/avatars/2.png",
		},
		{
			// (123456789 >> 22) % 6 = 29 % 6 = 5
			name:   "pomelo user hashes snowflake timestamp bits",
			author: Author{ID: "123456789", Discriminator: "0"},
			want:   "https://cdn.discordapp.com/embed/avatars/5.png",
		},
		{
			// (175928847299117063 >> 22) % 6 = 41944705796 % 6 = 2
			name:   "pomelo user with full-size snowflake",
			author: Author{ID: "175928847299117063", Discriminator: "0"},
			want:   "https://cdn.discordapp.com/embed/avatars/2.png",
		},
		{
			// missing discriminator takes the snowflake branch too
			name:   "empty discriminator",
			author: Author{ID: "4194304", Discriminator: ""},
			want:   "https://cdn.discordapp.com/embed/avatars/1.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvatarURL(tt.author, 64); got != tt.want {
				t.Errorf("AvatarURL() = %v, want %v", got, tt.want)
			}
		})
	}
}
