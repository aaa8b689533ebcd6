package format

import (
	"fmt"

	"github.com/lestrrat-go/strftime"

	"github.com/goliatone/go-stamp/pkg/timestamp"
)

// Strftime compiles a C-style strftime pattern once and returns a Formatter
// that renders the timestamp's UTC instant through it. The pattern language
// covers whole-second precision; for fractional output use Seconds, Seconds2,
// or SecondsMs. Field semantics match the native formatters for every layout
// both can express.
func Strftime(pattern string) (Formatter, error) {
	p, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("format: compile strftime pattern %q: %w", pattern, err)
	}
	return func(ts timestamp.Timestamp) string {
		return p.FormatString(ts.UTCTime())
	}, nil
}

// MustStrftime panics when the pattern does not compile. Useful for static
// patterns wired at init time.
func MustStrftime(pattern string) Formatter {
	formatter, err := Strftime(pattern)
	if err != nil {
		panic(err)
	}
	return formatter
}
