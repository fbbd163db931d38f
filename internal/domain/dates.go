package domain

import "time"

// DateLayout is the calendar-date wire format used across the API.
const DateLayout = "2006-01-02"

// Day truncates t to its UTC midnight boundary. All stay dates are compared
// at day granularity; time-of-day never participates in overlap decisions.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the whole-day difference between checkout and checkin.
func Nights(checkin, checkout time.Time) int {
	return int(Day(checkout).Sub(Day(checkin)) / (24 * time.Hour))
}
