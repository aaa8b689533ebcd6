package template

import "github.com/goliatone/go-stamp/pkg/format"

var (
	isoSegments      = []string{"", "-", "-", "T", ":", ":", "Z"}
	localISOSegments = []string{"", "-", "-", "T", ":", ":", ""}
	isoFormatters    = []format.Formatter{
		format.Year4,
		format.Month2,
		format.Day2,
		format.Hours2,
		format.Minutes2,
		format.FloorSeconds2,
	}
)

// ISO8601 renders YYYY-MM-DDThh:mm:ssZ with the fractional second truncated,
// never rounded.
var ISO8601 = MustCompose(isoSegments, isoFormatters)

// LocalISO8601 renders the same shape through the device's local timezone.
// The trailing Z is omitted since the result is no longer UTC and carries no
// explicit offset.
var LocalISO8601 = MustComposeLocal(localISOSegments, isoFormatters)

// NewLocalISO8601 builds the local ISO-8601 preset against an explicit
// converter, for callers that cannot rely on the device zone.
func NewLocalISO8601(opts ...Option) format.Formatter {
	return MustComposeLocal(localISOSegments, isoFormatters, opts...)
}
