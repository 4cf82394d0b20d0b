package models

import "time"

// Event is one notable occurrence reported by a producer, e.g. a process restart.
// Events are values: the queue copies them in and nothing mutates them afterwards.
type Event struct {
	SourceName string    `json:"sourceName"`
	Kind       string    `json:"kind"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurredAt"`
}

// SameKey reports whether two events come from the same source with the same kind.
func (e Event) SameKey(other Event) bool {
	return e.SourceName == other.SourceName && e.Kind == other.Kind
}
