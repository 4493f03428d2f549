package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMM                    = "2006-01"
	DateFormatYYYYMMDDWithoutDash       = "20060102"
	DateFormatYYYYMMDDHHMMSSWithoutDash = "20060102150405"
	DateFormatDDMMMYYYY                 = "02-Jan-2006"
	DateFormatYYYYMMDDWithTime          = "2006-01-02 15:04:05"
	DateFormatYYYYMMDDWithTimeAndOffset = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

// Now is the process clock, swappable when a caller needs to pin dates.
var Now = time.Now

// DaysBetween returns the absolute whole-day distance between two dates,
// ignoring the time-of-day component.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}
