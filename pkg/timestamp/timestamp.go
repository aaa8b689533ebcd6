package timestamp

import (
	"math"
	"time"
)

// Timestamp is an immutable calendar-and-clock value denominated in UTC
// unless explicitly localized. Seconds carries sub-second precision as its
// fractional part; every other field is expected to sit in its canonical
// range (Month 1-12, Day 1-31, Hours 0-23, Minutes 0-59). Formatter output
// for out-of-range fields is undefined; run values through Normalize first.
type Timestamp struct {
	Year    int
	Month   int
	Day     int
	Hours   int
	Minutes int
	Seconds float64
}

// SplitSeconds returns the whole-second part of Seconds, floored, and the
// remaining fractional part.
func (ts Timestamp) SplitSeconds() (whole int, frac float64) {
	w := math.Floor(ts.Seconds)
	return int(w), ts.Seconds - w
}

// Weekday returns the day-of-week index for the date, 0 = Sunday, computed
// through calendar arithmetic on the normalized date.
func (ts Timestamp) Weekday() int {
	t := time.Date(ts.Year, time.Month(ts.Month), ts.Day, 0, 0, 0, 0, time.UTC)
	return int(t.Weekday())
}

// UTCTime maps the timestamp onto the host instant representation. The
// fractional second becomes nanoseconds, truncated at nanosecond resolution.
func (ts Timestamp) UTCTime() time.Time {
	whole, frac := ts.SplitSeconds()
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hours, ts.Minutes,
		whole, int(frac*float64(time.Second)), time.UTC)
}

// FromTime builds a Timestamp from the UTC calendar fields of t.
func FromTime(t time.Time) Timestamp {
	u := t.UTC()
	return Timestamp{
		Year:    u.Year(),
		Month:   int(u.Month()),
		Day:     u.Day(),
		Hours:   u.Hour(),
		Minutes: u.Minute(),
		Seconds: float64(u.Second()) + float64(u.Nanosecond())/float64(time.Second),
	}
}

// Normalize carries overflowed fields into higher fields (seconds >= 60 into
// minutes, month 13 into the next year, day overflow through month lengths)
// and returns the canonical value. The fractional second is split off before
// the calendar pass and re-attached verbatim, so sub-second precision never
// round-trips through nanosecond conversion.
func Normalize(ts Timestamp) Timestamp {
	whole, frac := ts.SplitSeconds()
	t := time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hours, ts.Minutes, whole, 0, time.UTC)
	out := FromTime(t)
	out.Seconds += frac
	return out
}
