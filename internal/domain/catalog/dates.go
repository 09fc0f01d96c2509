package catalog

import (
	"fmt"
	"time"
)

const eventDateLayout = "2006-01-02"

// ParseEventDate parses the calendar-date form events are submitted with.
// Dates before 1950 are rejected, same bound as the submission form.
func ParseEventDate(s string) (time.Time, error) {
	t, err := time.Parse(eventDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("catalog: invalid event date %q: %w", s, err)
	}
	if t.Year() < 1950 {
		return time.Time{}, fmt.Errorf("catalog: event date %q is before 1950", s)
	}
	return t, nil
}
