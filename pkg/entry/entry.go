// Package entry defines the task record and its single-line text encoding.
package entry

import (
	"fmt"
	"strings"
	"time"
)

// TagComplete marks an entry as done. Matching is case-insensitive.
const TagComplete = "complete"

const layoutISO = "2006-01-02"

// Entry is one task: a calendar date, a description and an ordered tag list.
type Entry struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
}

// New builds an entry for the given calendar day. The time of day and
// location of on are discarded.
func New(on time.Time, description string, tags ...string) *Entry {
	e := &Entry{
		Date:        Day(on),
		Description: strings.TrimSpace(description),
	}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			e.Tags = append(e.Tags, t)
		}
	}
	return e
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a zero-padded YYYY-MM-DD date.
func ParseDate(v string) (time.Time, error) {
	return time.Parse(layoutISO, strings.TrimSpace(v))
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(layoutISO)
}

// HasTag reports whether the entry carries tag, ignoring case.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// IsComplete reports whether the entry carries the complete tag.
func (e *Entry) IsComplete() bool {
	return e.HasTag(TagComplete)
}

// Complete adds the complete tag unless it is already present.
func (e *Entry) Complete() {
	if !e.IsComplete() {
		e.Tags = append(e.Tags, TagComplete)
	}
}

// TagString joins the tags with commas, or returns placeholder when there are none.
func (e *Entry) TagString(placeholder string) string {
	if len(e.Tags) == 0 {
		return placeholder
	}
	return strings.Join(e.Tags, ",")
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s: %s [%s]", FormatDate(e.Date), e.Description, e.TagString("-"))
}
