package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_SameKey(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	base := Event{SourceName: "api", Kind: "restart", Detail: "a", OccurredAt: at}

	assert.True(t, base.SameKey(Event{SourceName: "api", Kind: "restart", Detail: "b"}))
	assert.False(t, base.SameKey(Event{SourceName: "api", Kind: "exception"}))
	assert.False(t, base.SameKey(Event{SourceName: "worker", Kind: "restart"}))
}

func TestTotalEvents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalEvents(nil))
	assert.Equal(t, 5, TotalEvents([]CompactedGroup{{Count: 2}, {Count: 3}}))
}
