// Package timex extends the standard time package with calendar rounding,
// business-day arithmetic, word-based duration parsing, human-relative
// formatting, and Windows FILETIME conversion.
//
// All rounding functions are location-aware: they round in t's location, so
// StartOfDay over a DST transition still lands on that location's midnight.
package timex

import (
	"math"
	"time"
)

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the most recent weekday at or before t.
// Pass time.Monday for ISO weeks, time.Sunday for US weeks.
func StartOfWeek(t time.Time, weekday time.Weekday) time.Time {
	day := StartOfDay(t)
	diff := (int(day.Weekday()) - int(weekday) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last representable instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfQuarter returns midnight of the first day of t's calendar quarter.
func StartOfQuarter(t time.Time) time.Time {
	y, m, _ := t.Date()
	qm := time.Month((int(m)-1)/3*3 + 1)
	return time.Date(y, qm, 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns midnight of January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// AddBusinessDays returns t moved by n business days, skipping Saturdays and
// Sundays. n may be negative. The time of day is preserved; if t itself falls
// on a weekend, the count starts from the next business day in the direction
// of travel.
func AddBusinessDays(t time.Time, n int) time.Time {
	if n == 0 {
		return t
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for n > 0 {
		t = t.AddDate(0, 0, step)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n--
		}
	}
	return t
}

// DaysBetween returns the number of calendar-day boundaries between a and b
// in a's location. The result is negative when b precedes a; the same day in
// different locations can legitimately differ by one. Rounding absorbs DST
// days that are 23 or 25 hours long.
func DaysBetween(a, b time.Time) int {
	da := StartOfDay(a)
	db := StartOfDay(b.In(a.Location()))
	return int(math.Round(db.Sub(da).Hours() / 24))
}
