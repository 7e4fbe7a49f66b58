package redis

import "strings"

// KeyPrefixProfile is the prefix for Mojang profile cache keys.
const KeyPrefixProfile = "portal:profile:"

// ProfileKey returns the Redis key for a username's resolved profile.
// Usernames are case-insensitive upstream, so keys are lowercased.
func ProfileKey(username string) string {
	return KeyPrefixProfile + strings.ToLower(username)
}
