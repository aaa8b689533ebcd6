// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"time"

	"github.com/goliatone/go-stamp/pkg/localtime"
	"github.com/goliatone/go-stamp/pkg/timestamp"
)

// MorningUTC is the canonical docs fixture: 2021-05-01T11:58:27.239Z.
func MorningUTC() timestamp.Timestamp {
	return timestamp.Timestamp{
		Year:    2021,
		Month:   5,
		Day:     1,
		Hours:   11,
		Minutes: 58,
		Seconds: 27.239,
	}
}

// Afternoon is a whole-second afternoon fixture: 1994-11-05T13:15:30Z.
func Afternoon() timestamp.Timestamp {
	return timestamp.Timestamp{
		Year:    1994,
		Month:   11,
		Day:     5,
		Hours:   13,
		Minutes: 15,
		Seconds: 30,
	}
}

// FarFuture has a 5-digit year, exercising the no-truncation contracts.
func FarFuture() timestamp.Timestamp {
	return timestamp.Timestamp{Year: 10000, Month: 1, Day: 1}
}

// FixedZone is a synthetic UTC+2 location with no DST, so conversions stay
// deterministic on any host.
func FixedZone() *time.Location {
	return time.FixedZone("UTC+2", 2*60*60)
}

// FixedConverter binds the local-time converter to FixedZone.
func FixedConverter() *localtime.Converter {
	return localtime.In(FixedZone())
}
