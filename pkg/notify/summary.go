package notify

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/ironlist/pkg/entry"
)

// MaxBodyEntries caps how many entries a notification body lists.
const MaxBodyEntries = 10

// Upcoming returns the open entries dated today or later, in order.
func Upcoming(entries []*entry.Entry, today time.Time) []*entry.Entry {
	day := entry.Day(today)
	var out []*entry.Entry
	for _, e := range entries {
		if !e.Date.Before(day) && !e.IsComplete() {
			out = append(out, e)
		}
	}
	return out
}

// Summarize builds the notification summary and body for the entries that
// are upcoming as of today.
func Summarize(entries []*entry.Entry, today time.Time) (summary, body string) {
	upcoming := Upcoming(entries, today)
	if len(upcoming) == 0 {
		return "IronList: no upcoming items", ""
	}
	summary = fmt.Sprintf("IronList: %d upcoming item(s)", len(upcoming))

	var b strings.Builder
	for i, e := range upcoming {
		if i == MaxBodyEntries {
			fmt.Fprintf(&b, "and %d more...", len(upcoming)-MaxBodyEntries)
			break
		}
		fmt.Fprintf(&b, "- %s: %s [%s]\n", entry.FormatDate(e.Date), e.Description, e.TagString("-"))
	}
	return summary, b.String()
}
