package compactors

import (
	"strings"
	"testing"
	"time"

	"notify-digest/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 10, 14, 18, 3, 0, 0, time.UTC)

func event(source, kind, detail string, offset time.Duration) models.Event {
	return models.Event{SourceName: source, Kind: kind, Detail: detail, OccurredAt: baseTime.Add(offset)}
}

func TestMessageCompactor_Compact_MergesAdjacentRuns(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	events := []models.Event{
		event("A", "E", "x1", 0),
		event("A", "E", "x2", time.Second),
		event("B", "E", "y", 2*time.Second),
	}

	groups, dropped := compactor.Compact(events, 0)

	assert.Equal(t, 0, dropped)
	assert.Equal(t, []models.CompactedGroup{
		{SourceName: "A", Kind: "E", Detail: "x1\nx2", OccurredAt: baseTime, Count: 2},
		{SourceName: "B", Kind: "E", Detail: "y", OccurredAt: baseTime.Add(2 * time.Second), Count: 1},
	}, groups)
}

func TestMessageCompactor_Compact_CapAppliesBeforeMerge(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	events := []models.Event{
		event("A", "E", "x1", 0),
		event("A", "E", "x2", time.Second),
		event("B", "E", "y", 2*time.Second),
	}

	groups, dropped := compactor.Compact(events, 2)

	assert.Equal(t, 1, dropped)
	assert.Equal(t, []models.CompactedGroup{
		{SourceName: "A", Kind: "E", Detail: "x1\nx2", OccurredAt: baseTime, Count: 2},
	}, groups)
}

func TestMessageCompactor_Compact_NonAdjacentSameKeyStaySeparate(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	events := []models.Event{
		event("A", "E", "x", 0),
		event("B", "E", "y", time.Second),
		event("A", "E", "z", 2*time.Second),
	}

	groups, dropped := compactor.Compact(events, 0)

	assert.Equal(t, 0, dropped)
	require.Len(t, groups, 3)
	assert.Equal(t, "x", groups[0].Detail)
	assert.Equal(t, "y", groups[1].Detail)
	assert.Equal(t, "z", groups[2].Detail)
}

func TestMessageCompactor_Compact_SameSourceDifferentKind(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	groups, _ := compactor.Compact([]models.Event{
		event("api", "restart", "r", 0),
		event("api", "exception", "e", time.Second),
	}, 0)

	require.Len(t, groups, 2)
	assert.Equal(t, "restart", groups[0].Kind)
	assert.Equal(t, "exception", groups[1].Kind)
}

func TestMessageCompactor_Compact_Empty(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()

	groups, dropped := compactor.Compact(nil, 5)
	assert.Nil(t, groups)
	assert.Equal(t, 0, dropped)
}

func TestMessageCompactor_Compact_NegativeMaxIsUnlimited(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	events := []models.Event{event("A", "E", "1", 0), event("B", "E", "2", 0), event("C", "E", "3", 0)}

	groups, dropped := compactor.Compact(events, -1)
	assert.Len(t, groups, 3)
	assert.Equal(t, 0, dropped)
}

func TestMessageCompactor_Compact_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	events := []models.Event{event("A", "E", "x1", 0), event("A", "E", "x2", 0)}
	snapshot := append([]models.Event(nil), events...)

	_, _ = compactor.Compact(events, 1)
	_, _ = compactor.Compact(events, 0)

	assert.Equal(t, snapshot, events)
}

func TestMessageCompactor_Compact_CapProperty(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	sources := []string{"A", "A", "B", "B", "B", "C", "A", "A", "D", "D"}
	events := make([]models.Event, 0, len(sources))
	for i, s := range sources {
		events = append(events, event(s, "E", s+string(rune('0'+i)), time.Duration(i)*time.Second))
	}

	for maxCount := 1; maxCount <= len(events)+2; maxCount++ {
		groups, dropped := compactor.Compact(events, maxCount)

		wantDropped := len(events) - maxCount
		if wantDropped < 0 {
			wantDropped = 0
		}
		assert.Equal(t, wantDropped, dropped, "maxCount=%d", maxCount)

		kept := models.TotalEvents(groups)
		assert.LessOrEqual(t, kept, maxCount, "maxCount=%d", maxCount)
		assert.Equal(t, len(events)-dropped, kept, "maxCount=%d", maxCount)

		lines := 0
		for _, g := range groups {
			lines += strings.Count(g.Detail, "\n") + 1
		}
		assert.Equal(t, kept, lines, "detail lines must match kept events, maxCount=%d", maxCount)
	}
}

func TestMessageCompactor_Compact_IsFixedPoint(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	events := []models.Event{
		event("A", "E", "1", 0),
		event("A", "E", "2", time.Second),
		event("B", "E", "3", 2*time.Second),
		event("A", "E", "4", 3*time.Second),
		event("A", "F", "5", 4*time.Second),
		event("A", "F", "6", 5*time.Second),
	}

	first, _ := compactor.Compact(events, 0)

	asEvents := make([]models.Event, 0, len(first))
	for _, g := range first {
		asEvents = append(asEvents, models.Event{SourceName: g.SourceName, Kind: g.Kind, Detail: g.Detail, OccurredAt: g.OccurredAt})
	}
	second, dropped := compactor.Compact(asEvents, 0)

	assert.Equal(t, 0, dropped)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].SourceName, second[i].SourceName)
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].Detail, second[i].Detail)
		assert.Equal(t, first[i].OccurredAt, second[i].OccurredAt)
		assert.Equal(t, 1, second[i].Count)
	}
}

func TestMessageCompactor_Compact_GroupBoundariesFollowSameKey(t *testing.T) {
	t.Parallel()

	compactor := NewMessageCompactor()
	events := []models.Event{
		event("A", "E", "1", 0),
		event("A", "E", "2", 0),
		event("A", "F", "3", 0),
		event("B", "F", "4", 0),
		event("B", "F", "5", 0),
		event("A", "E", "6", 0),
	}

	groups, _ := compactor.Compact(events, 0)

	boundaries := 0
	for i := 1; i < len(events); i++ {
		if !events[i-1].SameKey(events[i]) {
			boundaries++
		}
	}
	require.Len(t, groups, boundaries+1)
	assert.Equal(t, len(events), models.TotalEvents(groups))
	for i := 1; i < len(groups); i++ {
		prev := models.Event{SourceName: groups[i-1].SourceName, Kind: groups[i-1].Kind}
		next := models.Event{SourceName: groups[i].SourceName, Kind: groups[i].Kind}
		assert.False(t, prev.SameKey(next), "adjacent groups %d and %d share a key", i-1, i)
	}
}
