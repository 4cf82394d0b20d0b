package models

import "time"

// CompactedGroup is a run of consecutive events sharing SourceName and Kind, rendered as one block.
//
// Identity fields and OccurredAt come from the first event of the run; Detail holds every
// member's detail joined by "\n" in arrival order.
//
// Example: events
//
//	{api, restart, "exit code 1", 18:03:01}
//	{api, restart, "exit code 137", 18:03:04}
//
// compact to
//
//	{SourceName: api, Kind: restart, Detail: "exit code 1\nexit code 137", OccurredAt: 18:03:01, Count: 2}
type CompactedGroup struct {
	SourceName string
	Kind       string
	Detail     string
	OccurredAt time.Time
	Count      int
}

// TotalEvents sums the number of original events represented by groups.
func TotalEvents(groups []CompactedGroup) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}
