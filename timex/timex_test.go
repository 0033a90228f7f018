package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-13 was a Wednesday.
var wed = time.Date(2024, time.March, 13, 15, 42, 7, 123456789, time.UTC)

func TestStartEndOfDay(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC), StartOfDay(wed))
	assert.Equal(t, time.Date(2024, time.March, 13, 23, 59, 59, 999999999, time.UTC), EndOfDay(wed))
}

func TestStartOfWeek(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), StartOfWeek(wed, time.Monday))
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(wed, time.Sunday))

	// a Monday is its own week start
	mon := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, StartOfDay(mon), StartOfWeek(mon, time.Monday))
}

func TestMonthQuarterYear(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(wed))
	assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, 999999999, time.UTC), EndOfMonth(wed))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), StartOfQuarter(wed))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), StartOfYear(wed))

	nov := time.Date(2024, time.November, 5, 1, 2, 3, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), StartOfQuarter(nov))

	// leap February
	feb := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 29, EndOfMonth(feb).Day())
}

func TestAddBusinessDays(t *testing.T) {
	// Wed + 3 business days = Monday
	assert.Equal(t, time.Monday, AddBusinessDays(wed, 3).Weekday())
	assert.Equal(t, time.Date(2024, time.March, 18, 15, 42, 7, 123456789, time.UTC), AddBusinessDays(wed, 3))

	// backwards over a weekend: Wed - 3 = previous Friday
	assert.Equal(t, time.Date(2024, time.March, 8, 15, 42, 7, 123456789, time.UTC), AddBusinessDays(wed, -3))

	// zero is identity
	assert.Equal(t, wed, AddBusinessDays(wed, 0))

	// starting on a Saturday, +1 lands on Monday
	sat := time.Date(2024, time.March, 16, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, AddBusinessDays(sat, 1).Weekday())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(wed, wed))
	assert.Equal(t, 1, DaysBetween(wed, wed.Add(10*time.Hour)))  // crosses midnight
	assert.Equal(t, 0, DaysBetween(wed, wed.Add(2*time.Hour)))   // same day
	assert.Equal(t, -13, DaysBetween(wed, wed.AddDate(0, 0, -13)))
	assert.Equal(t, 366, DaysBetween(
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))) // 2024 is a leap year
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1h30m", 90 * time.Minute},
		{"-200ms", -200 * time.Millisecond},
		{"3 days", 3 * Day},
		{"1 week", Week},
		{"2 weeks", 2 * Week},
		{"2 hours 30 minutes", 2*time.Hour + 30*time.Minute},
		{"an hour", time.Hour},
		{"a day", Day},
		{"1.5 days", 36 * time.Hour},
		{"10 Minutes", 10 * time.Minute},
		{"1 month", 30 * Day},
		{"2 years", 2 * 365 * Day},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		require.NoError(t, err, "ParseDuration(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseDuration(%q)", tt.in)
	}
}

func TestParseDurationErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "3 fortnights", "days", "three days", "3"} {
		_, err := ParseDuration(in)
		assert.Error(t, err, "ParseDuration(%q)", in)
	}
}

func TestAgo(t *testing.T) {
	assert.Contains(t, Ago(time.Now().Add(-3*time.Hour)), "ago")
	assert.Contains(t, Until(time.Now().Add(3*time.Hour)), "from now")
}

func TestFiletimeRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Unix(0, 0).UTC(),
		time.Date(2024, time.March, 13, 15, 42, 7, 123456700, time.UTC), // 100ns aligned
		time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, tm := range times {
		assert.Equal(t, tm, FromFiletime(ToFiletime(tm)), "round-trip %v", tm)
	}
}

func TestFiletimeKnownValue(t *testing.T) {
	// the epoch offset itself is exactly 1970-01-01T00:00:00Z
	assert.Equal(t, time.Unix(0, 0).UTC(), FromFiletime(116444736000000000))
	assert.Equal(t, uint64(116444736000000000), ToFiletime(time.Unix(0, 0).UTC()))

	// pre-epoch values clamp
	assert.Equal(t, time.Unix(0, 0).UTC(), FromFiletime(0))
	assert.Equal(t, uint64(116444736000000000), ToFiletime(time.Unix(-5, 0)))
}
