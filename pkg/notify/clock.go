package notify

import (
	"fmt"
	"time"
)

const layoutClock = "15:04"

// Clock is a time of day in 24-hour form.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an HH:MM 24-hour time.
func ParseClock(v string) (Clock, error) {
	t, err := time.Parse(layoutClock, v)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", v)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the instant of c on the calendar day of t, in t's location.
func (c Clock) On(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, t.Location())
}

// NextTrigger returns the next time c occurs: today if still ahead of now,
// otherwise tomorrow.
func NextTrigger(now time.Time, c Clock) time.Time {
	today := c.On(now)
	if now.Before(today) {
		return today
	}
	return c.On(now.AddDate(0, 0, 1))
}
