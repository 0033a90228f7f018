package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Word units accepted by ParseDuration beyond the stdlib suffixes. A month
// is 30 days and a year 365; callers that need calendar-exact month math
// should use time.Time.AddDate instead.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
	Year  = 365 * Day
)

var wordUnits = map[string]time.Duration{
	"nanosecond":  time.Nanosecond,
	"microsecond": time.Microsecond,
	"millisecond": time.Millisecond,
	"second":      time.Second,
	"sec":         time.Second,
	"minute":      time.Minute,
	"min":         time.Minute,
	"hour":        time.Hour,
	"hr":          time.Hour,
	"day":         Day,
	"week":        Week,
	"month":       Month,
	"year":        Year,
}

// ParseDuration parses d as a duration. It accepts everything
// time.ParseDuration accepts ("1h30m", "-200ms") plus space-separated word
// forms: "3 days", "1 week", "2 hours 30 minutes", "an hour", "a day".
// Unit words may be singular or plural and are case-insensitive.
func ParseDuration(d string) (time.Duration, error) {
	s := strings.TrimSpace(d)
	if s == "" {
		return 0, fmt.Errorf("timex: empty duration")
	}
	if v, err := time.ParseDuration(s); err == nil {
		return v, nil
	}

	fields := strings.Fields(strings.ToLower(s))
	if len(fields)%2 != 0 {
		return 0, fmt.Errorf("timex: cannot parse duration %q", d)
	}
	var total time.Duration
	for i := 0; i < len(fields); i += 2 {
		n, err := parseCount(fields[i])
		if err != nil {
			return 0, fmt.Errorf("timex: cannot parse duration %q: %w", d, err)
		}
		unit, ok := wordUnits[strings.TrimSuffix(fields[i+1], "s")]
		if !ok {
			return 0, fmt.Errorf("timex: cannot parse duration %q: unknown unit %q", d, fields[i+1])
		}
		total += time.Duration(n * float64(unit))
	}
	return total, nil
}

func parseCount(s string) (float64, error) {
	switch s {
	case "a", "an", "one":
		return 1, nil
	}
	return strconv.ParseFloat(s, 64)
}

// Ago describes how long ago t was, in words: "3 days ago", "now". Times in
// the future read as "... from now".
func Ago(t time.Time) string { return humanize.Time(t) }

// Until describes how far in the future t is; it is Ago seen from the other
// side and produces the same phrasing.
func Until(t time.Time) string { return humanize.Time(t) }
