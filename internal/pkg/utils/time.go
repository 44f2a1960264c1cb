package utils

import (
	"time"

	"carebook-service/internal/pkg/constvars"
)

// Today returns the current calendar date truncated to midnight local time.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func ParseCalendarDate(value string) (time.Time, error) {
	return time.Parse(constvars.CalendarDateLayout, value)
}
