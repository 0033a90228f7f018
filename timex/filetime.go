package timex

import "time"

const (
	// filetimeOffset is the span between the FILETIME epoch (1601-01-01)
	// and the Unix epoch, in 100ns ticks.
	filetimeOffset = 116444736000000000
	// filetimeUnit is the length of one FILETIME tick in nanoseconds.
	filetimeUnit = 100
)

// FromFiletime converts a Windows FILETIME value (100ns ticks since
// 1601-01-01 UTC) to time.Time. Values at or before the Unix epoch map to
// the Unix epoch.
func FromFiletime(v uint64) time.Time {
	if v <= filetimeOffset {
		return time.Unix(0, 0).UTC()
	}
	ns := int64((v - filetimeOffset) * filetimeUnit)
	return time.Unix(ns/int64(time.Second), ns%int64(time.Second)).UTC()
}

// ToFiletime converts t to a Windows FILETIME value, truncating to 100ns
// resolution. Times before the Unix epoch clamp to the epoch.
func ToFiletime(t time.Time) uint64 {
	ns := t.UnixNano()
	if ns < 0 {
		ns = 0
	}
	return uint64(ns)/filetimeUnit + filetimeOffset
}
