package communities

import (
	"fmt"

	"github.com/holytrinity/portal/internal/domain"
)

// Mapper converts parsed config entries to domain.Community entities
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCommunities converts a Config to []*domain.Community.
// Entries without a guild id are invalid; the whole load is rejected so
// a bad edit never silently drops a community.
func (m *Mapper) MapCommunities(config *Config) ([]*domain.Community, error) {
	communities := make([]*domain.Community, 0, len(config.Communities))

	for name, props := range config.Communities {
		if name == "" {
			return nil, fmt.Errorf("community with empty name")
		}
		if props.GuildID == "" {
			return nil, fmt.Errorf("community %q has no guild_id", name)
		}

		communities = append(communities, &domain.Community{
			Name:                 name,
			GuildID:              props.GuildID,
			AnnouncementsChannel: props.AnnouncementsChannel,
		})
	}

	if len(communities) == 0 {
		return nil, fmt.Errorf("no communities configured")
	}

	return communities, nil
}
