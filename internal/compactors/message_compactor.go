package compactors

import (
	"notify-digest/internal/models"
)

//go:generate mockgen -source=message_compactor.go -destination=./mocks/message_compactor_mock.go -package=mocks
type MessageCompactor interface {
	// Compact caps events at maxCount (<= 0 means unlimited) and merges consecutive runs
	// with the same SourceName and Kind. It returns the groups and how many events were dropped.
	Compact(events []models.Event, maxCount int) ([]models.CompactedGroup, int)
}

type messageCompactor struct{}

func NewMessageCompactor() MessageCompactor {
	return &messageCompactor{}
}

func (c *messageCompactor) Compact(events []models.Event, maxCount int) ([]models.CompactedGroup, int) {
	kept, dropped := c.limit(events, maxCount)
	return c.mergeConsecutive(kept), dropped
}

// limit keeps the first maxCount events by arrival order.
func (c *messageCompactor) limit(events []models.Event, maxCount int) ([]models.Event, int) {
	if maxCount <= 0 || len(events) <= maxCount {
		return events, 0
	}
	return events[:maxCount], len(events) - maxCount
}

// mergeConsecutive only compares each event with the one before it, so a key that reappears
// after a different key starts a new group.
func (c *messageCompactor) mergeConsecutive(events []models.Event) []models.CompactedGroup {
	if len(events) == 0 {
		return nil
	}

	groups := make([]models.CompactedGroup, 0, len(events))
	for i, event := range events {
		if i > 0 && events[i-1].SameKey(event) {
			last := &groups[len(groups)-1]
			last.Detail += "\n" + event.Detail
			last.Count++
			continue
		}

		groups = append(groups, models.CompactedGroup{
			SourceName: event.SourceName,
			Kind:       event.Kind,
			Detail:     event.Detail,
			OccurredAt: event.OccurredAt,
			Count:      1,
		})
	}
	return groups
}
