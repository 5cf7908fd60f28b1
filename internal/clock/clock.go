// Package clock formats the taskbar clock.
package clock

import (
	"fmt"
	"time"
)

// Format renders t as a 12-hour time with zero-padded minutes, "1:05 PM".
func Format(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if t.Hour() >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), suffix)
}

// Parse reads an "HH:MM" 24-hour time on today's date in loc.
func Parse(s string, now time.Time) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM): %w", s, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

// UntilNextMinute returns how long until the displayed value next changes.
func UntilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}
