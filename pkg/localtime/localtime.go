// Package localtime converts UTC-denominated timestamps into the calendar of
// a single location. The conversion delegates the timezone-aware step to the
// host calendar primitive and never consults timezone data itself.
package localtime

import (
	"time"

	"github.com/goliatone/go-stamp/pkg/timestamp"
)

// Converter maps UTC timestamps onto one location's calendar. The zero value
// is not usable; construct through Device or In.
type Converter struct {
	loc *time.Location
}

// Device returns a converter bound to the host's configured local timezone.
// Its output depends on host configuration, so it is not stable across
// machines; callers needing a deterministic, zone-explicit conversion should
// use In instead.
func Device() *Converter {
	return &Converter{loc: time.Local}
}

// In returns a converter bound to an explicit location. A nil location falls
// back to UTC, matching the host primitive's own convention.
func In(loc *time.Location) *Converter {
	if loc == nil {
		loc = time.UTC
	}
	return &Converter{loc: loc}
}

// Location exposes the bound location, mainly for diagnostics.
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Convert expresses a UTC timestamp in the converter's local calendar,
// preserving sub-second precision. The fractional second is split off before
// the instant conversion and re-attached to the local whole seconds, then the
// result is normalized back into canonical field ranges.
func (c *Converter) Convert(ts timestamp.Timestamp) timestamp.Timestamp {
	whole, frac := ts.SplitSeconds()
	instant := time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hours, ts.Minutes, whole, 0, time.UTC)
	local := instant.In(c.loc)
	return timestamp.Normalize(timestamp.Timestamp{
		Year:    local.Year(),
		Month:   int(local.Month()),
		Day:     local.Day(),
		Hours:   local.Hour(),
		Minutes: local.Minute(),
		Seconds: float64(local.Second()) + frac,
	})
}
