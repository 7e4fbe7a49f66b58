package discord

import (
	"regexp"
	"strings"
)

// Mode selects the placeholder policy of Sanitize.
type Mode int

const (
	// ModeResolve substitutes real names from a mention table, falling
	// back to "unknown" placeholders. Used for rendered announcements.
	ModeResolve Mode = iota
	// ModeStrip substitutes generic placeholders without any lookup.
	// Used for event descriptions where no guild data is fetched.
	ModeStrip
)

var (
	emotePattern   = regexp.MustCompile(`<a?:[a-zA-Z0-9_]+:[0-9]+>`)
	channelPattern = regexp.MustCompile(`<#([0-9]+)>`)
	userPattern    = regexp.MustCompile(`<@!?([0-9]+)>`)
	rolePattern    = regexp.MustCompile(`<@&([0-9]+)>`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Sanitize transforms raw message content containing mention/emote tokens
// into display-safe text. Steps apply in order: emotes removed, channel
// mentions, user mentions, role mentions, then whitespace collapsed.
// A nil table behaves like an empty one; unmatched ids fall back to the
// placeholder and never fail.
func Sanitize(content string, mode Mode, mentions *MentionTable) string {
	if content == "" {
		return ""
	}

	out := emotePattern.ReplaceAllString(content, "")

	out = replaceMentions(out, channelPattern, mode, "#channel", "#unknown-channel", "#", lookup(mentions, func(m *MentionTable) map[string]string { return m.Channels }))
	out = replaceMentions(out, userPattern, mode, "@user", "@unknown-user", "@", lookup(mentions, func(m *MentionTable) map[string]string { return m.Users }))
	out = replaceMentions(out, rolePattern, mode, "@role", "@unknown-role", "@", lookup(mentions, func(m *MentionTable) map[string]string { return m.Roles }))

	out = spacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

func lookup(mentions *MentionTable, pick func(*MentionTable) map[string]string) map[string]string {
	if mentions == nil {
		return nil
	}
	return pick(mentions)
}

func replaceMentions(content string, pattern *regexp.Regexp, mode Mode, generic, unknown, sigil string, table map[string]string) string {
	return pattern.ReplaceAllStringFunc(content, func(token string) string {
		if mode == ModeStrip {
			return generic
		}
		id := pattern.FindStringSubmatch(token)[1]
		if name, ok := table[id]; ok {
			return sigil + name
		}
		return unknown
	})
}
