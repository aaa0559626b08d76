// Package timeutil provides timezone utilities for Indian Standard Time.
// The school calendar (notices, fee dates, timetable days) is entirely local
// to Jorhat, so all date work happens in IST.
// No external dependencies - uses only standard library.
package timeutil

import "time"

// IndiaTZ is Indian Standard Time (UTC+5:30, no DST).
var IndiaTZ = time.FixedZone("Asia/Kolkata", 5*3600+1800)

// LongDate is the display layout used across the portal, e.g. "March 5, 2025".
const LongDate = "January 2, 2006"

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(IndiaTZ)
}

// Today returns the current date in IST, truncated to midnight.
func Today() time.Time {
	return StartOfDay(Now())
}

// Date creates a date in IST.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, IndiaTZ)
}

// StartOfDay returns the start of the day (00:00:00) in IST.
func StartOfDay(t time.Time) time.Time {
	local := t.In(IndiaTZ)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, IndiaTZ)
}

// FormatLong formats a date in the portal's long display layout.
func FormatLong(t time.Time) string {
	return t.In(IndiaTZ).Format(LongDate)
}

// DaysBetween returns the number of whole days from one date to a later one.
// Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
}

// DayName returns the capitalized weekday name for the given time in IST,
// matching the timetable's day keys ("Monday", "Tuesday", ...).
func DayName(t time.Time) string {
	return t.In(IndiaTZ).Weekday().String()
}
