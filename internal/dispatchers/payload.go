package dispatchers

import (
	"fmt"
	"strings"
	"time"

	"notify-digest/internal/models"
)

// dispatchPayload is the JSON body POSTed to the sink.
type dispatchPayload struct {
	Text string `json:"text"`
}

// RenderPayload builds the message text: a header naming the reporter, one block per group,
// then a suppression notice when events were cut by the size cap.
//
// Example:
//
//	*[api-01]*
//	Name: api
//	Event: restart
//	Description: exit code 1
//	exit code 137
//	Timestamp: 2026-10-14T18:03:01Z
//	3 messages have been suppressed.
func RenderPayload(displayName string, groups []models.CompactedGroup, dropped int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*[%s]*\n", displayName)
	for _, g := range groups {
		fmt.Fprintf(&b, "Name: %s\n", g.SourceName)
		fmt.Fprintf(&b, "Event: %s\n", g.Kind)
		fmt.Fprintf(&b, "Description: %s\n", g.Detail)
		fmt.Fprintf(&b, "Timestamp: %s\n", g.OccurredAt.UTC().Format(time.RFC3339))
	}
	if dropped > 0 {
		b.WriteString(suppressionNotice(dropped))
		b.WriteString("\n")
	}
	return b.String()
}

func suppressionNotice(dropped int) string {
	if dropped == 1 {
		return "1 message has been suppressed."
	}
	return fmt.Sprintf("%d messages have been suppressed.", dropped)
}
