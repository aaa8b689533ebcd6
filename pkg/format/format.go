// Package format provides the field formatters a template composes: pure
// functions rendering one timestamp field to a string fragment, with fixed
// padding and truncation rules.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-stamp/pkg/timestamp"
)

// Formatter renders a Timestamp into a string fragment. Formatters are pure
// functions: stateless, deterministic, and safe to share across goroutines.
// Each one reads only the fields it needs and never validates ranges; the
// Timestamp contract covers that.
type Formatter func(timestamp.Timestamp) string

// pad renders n as decimal, left zero-padded to at least width digits.
// Callers guarantee n >= 0; values already wider are never truncated.
func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// hour12 converts a 24-hour clock value onto the 12-hour dial: 0 and 12 both
// read 12, 13 reads 1.
func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

// seconds renders a fractional seconds value exactly as carried, with no
// rounding and no synthesized trailing zeros.
func seconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Year renders the year as a plain signed decimal, no padding.
func Year(ts timestamp.Timestamp) string { return strconv.Itoa(ts.Year) }

// Month renders the month (1-12) unpadded.
func Month(ts timestamp.Timestamp) string { return strconv.Itoa(ts.Month) }

// Day renders the day of month unpadded.
func Day(ts timestamp.Timestamp) string { return strconv.Itoa(ts.Day) }

// Hours renders the 24-hour clock value unpadded.
func Hours(ts timestamp.Timestamp) string { return strconv.Itoa(ts.Hours) }

// Minutes renders the minute unpadded.
func Minutes(ts timestamp.Timestamp) string { return strconv.Itoa(ts.Minutes) }

// Seconds renders the seconds field with its full fractional precision, e.g.
// 2.234 renders as "2.234" and 27 renders as "27".
func Seconds(ts timestamp.Timestamp) string { return seconds(ts.Seconds) }

// Year4 left zero-pads the year to at least 4 digits. Years with 5 or more
// digits pass through untruncated.
func Year4(ts timestamp.Timestamp) string { return pad(ts.Year, 4) }

// ShortYear renders the last two digits of the year, always exactly 2 digits.
func ShortYear(ts timestamp.Timestamp) string { return pad(ts.Year%100, 2) }

// Month2 zero-pads the month to 2 digits.
func Month2(ts timestamp.Timestamp) string { return pad(ts.Month, 2) }

// Day2 zero-pads the day to 2 digits.
func Day2(ts timestamp.Timestamp) string { return pad(ts.Day, 2) }

// Hours2 zero-pads the 24-hour clock value to 2 digits.
func Hours2(ts timestamp.Timestamp) string { return pad(ts.Hours, 2) }

// Minutes2 zero-pads the minute to 2 digits.
func Minutes2(ts timestamp.Timestamp) string { return pad(ts.Minutes, 2) }

// Hours12 renders the hour on the 12-hour dial, unpadded.
func Hours12(ts timestamp.Timestamp) string { return strconv.Itoa(hour12(ts.Hours)) }

// Hours122 renders the hour on the 12-hour dial, zero-padded to 2 digits.
func Hours122(ts timestamp.Timestamp) string { return pad(hour12(ts.Hours), 2) }

// AMPM returns "AM" for hours 0-11 and "PM" for hours 12-23. Midnight is AM,
// noon is PM.
func AMPM(ts timestamp.Timestamp) string {
	if ts.Hours < 12 {
		return "AM"
	}
	return "PM"
}

// MonthName maps the numeric month onto the fixed English table.
func MonthName(ts timestamp.Timestamp) string { return monthNames[ts.Month-1] }

// DayOfWeek maps the date's weekday onto the fixed English table.
func DayOfWeek(ts timestamp.Timestamp) string { return dayNames[ts.Weekday()] }

// Seconds2 renders seconds like Seconds but zero-pads the integer portion
// preceding any decimal point to at least 2 digits, leaving the fractional
// part untouched.
func Seconds2(ts timestamp.Timestamp) string {
	head, tail, split := strings.Cut(seconds(ts.Seconds), ".")
	if len(head) < 2 {
		head = strings.Repeat("0", 2-len(head)) + head
	}
	if !split {
		return head
	}
	return head + "." + tail
}

// FloorSeconds discards the fractional part and renders whole seconds.
func FloorSeconds(ts timestamp.Timestamp) string {
	whole, _ := ts.SplitSeconds()
	return strconv.Itoa(whole)
}

// FloorSeconds2 renders whole seconds zero-padded to 2 digits.
func FloorSeconds2(ts timestamp.Timestamp) string {
	whole, _ := ts.SplitSeconds()
	return pad(whole, 2)
}

// SecondsMs truncates seconds to whole milliseconds and renders the fixed
// "SS.mmm" layout: multiply by 1000, floor, pad to 5 digits, then split the
// digit string 2+3. Truncation always floors, so 1.0018 renders "01.001".
func SecondsMs(ts timestamp.Timestamp) string {
	millis := int(math.Floor(ts.Seconds * 1000))
	digits := pad(millis, 5)
	return digits[:2] + "." + digits[2:]
}
