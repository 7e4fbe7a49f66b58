package domain

import (
	"sort"
	"time"

	"github.com/holytrinity/portal/internal/discord"
)

// MaxEvents caps the events feed.
const MaxEvents = 5

// UpcomingEvents keeps only events starting strictly after now, sorted
// ascending by start time and capped to MaxEvents. Descriptions are
// sanitized in strip mode since no guild lookup is fetched on this feed.
// Events with an unparseable start time are dropped rather than guessed at.
func UpcomingEvents(events []discord.ScheduledEvent, now time.Time) []discord.ScheduledEvent {
	type timed struct {
		event discord.ScheduledEvent
		start time.Time
	}

	upcoming := make([]timed, 0, len(events))
	for _, event := range events {
		start, err := time.Parse(time.RFC3339, event.ScheduledStartTime)
		if err != nil || !start.After(now) {
			continue
		}
		event.Description = discord.Sanitize(event.Description, discord.ModeStrip, nil)
		upcoming = append(upcoming, timed{event: event, start: start})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].start.Before(upcoming[j].start)
	})

	if len(upcoming) > MaxEvents {
		upcoming = upcoming[:MaxEvents]
	}

	result := make([]discord.ScheduledEvent, len(upcoming))
	for i, u := range upcoming {
		result[i] = u.event
	}
	return result
}
