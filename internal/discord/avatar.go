package discord

import (
	"fmt"
	"strconv"
)

const cdnBaseURL = "https://cdn.discordapp.com"

// Default avatar variant counts differ between the two username systems:
// legacy accounts hash their discriminator over 5 variants, new-system
// accounts hash the snowflake timestamp bits over 6.
const (
	legacyDefaultAvatars = 5
	newDefaultAvatars    = 6
)

// AvatarURL builds the CDN URL for an author's avatar. Authors without a
// custom avatar hash get one of the default variants: legacy accounts use
// discriminator % 5, new-system accounts (discriminator "0") use
// (snowflake >> 22) % 6.
func AvatarURL(author Author, size int) string {
	if author.Avatar != "" {
		return fmt.Sprintf("%s/avatars/%s/%s.png?size=%d", cdnBaseURL, author.ID, author.Avatar, size)
	}

	index := 0
	if author.Discriminator != "" && author.Discriminator != "0" {
		if n, err := strconv.Atoi(author.Discriminator); err == nil {
			index = n % legacyDefaultAvatars
		}
	} else {
		if n, err := strconv.ParseInt(author.ID, 10, 64); err == nil {
			index = int((n >> 22) % newDefaultAvatars)
		}
	}
	return fmt.Sprintf("%s/embed/avatars/%d.png", cdnBaseURL, index)
}
