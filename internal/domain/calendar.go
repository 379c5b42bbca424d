package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates throughout the chatbot.
const DateLayout = "2006-01-02"

// ForecastWindowDays is the number of days covered by the Meteoblue
// basic-day package, day 0 being today.
const ForecastWindowDays = 7

// Today returns the current calendar date as YYYY-MM-DD, in the process's
// local timezone (matching how "today" is resolved in user queries).
func Today() string {
	return clock.Now().Format(DateLayout)
}

// DayOffset computes the zero-based day offset of target relative to today,
// on calendar dates rather than timestamps. Negative offsets mean the past.
func DayOffset(target string) (int, error) {
	t, err := time.Parse(DateLayout, target)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", target, err)
	}
	now := clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(today).Hours() / 24), nil
}

// InForecastWindow reports whether a day offset addresses a day the forecast
// provider can serve.
func InForecastWindow(offset int) bool {
	return offset >= 0 && offset < ForecastWindowDays
}
