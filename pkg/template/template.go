// Package template composes literal text segments and field formatters into
// single-call timestamp formatters, and ships the ISO-8601 presets built from
// that mechanism.
package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-stamp/pkg/format"
	"github.com/goliatone/go-stamp/pkg/localtime"
	"github.com/goliatone/go-stamp/pkg/timestamp"
)

// ErrArity reports a segment/formatter count mismatch at composition time.
// Segments surround and separate formatters, so a valid template always has
// exactly one more segment than formatters.
var ErrArity = errors.New("segments must outnumber formatters by exactly one")

// Option configures local-aware composition.
type Option func(*options)

type options struct {
	converter *localtime.Converter
}

// WithConverter substitutes the local-time converter used by ComposeLocal,
// typically to pin an explicit zone in tests or zone-aware callers.
func WithConverter(converter *localtime.Converter) Option {
	return func(opts *options) {
		opts.converter = converter
	}
}

// Compose interleaves literal segments with formatters into one Formatter:
// segments[0], formatters[0](ts), segments[1], ... segments[n]. The segment
// and formatter lists are copied at construction; the returned formatter is
// pure and referentially transparent.
func Compose(segments []string, formatters []format.Formatter) (format.Formatter, error) {
	if len(segments) != len(formatters)+1 {
		return nil, fmt.Errorf("template: %d segments cannot interleave %d formatters: %w",
			len(segments), len(formatters), ErrArity)
	}

	segs := append([]string(nil), segments...)
	fns := append([]format.Formatter(nil), formatters...)

	return func(ts timestamp.Timestamp) string {
		var b strings.Builder
		b.WriteString(segs[0])
		for i, render := range fns {
			b.WriteString(render(ts))
			b.WriteString(segs[i+1])
		}
		return b.String()
	}, nil
}

// MustCompose panics on composition failure. Useful for templates whose shape
// is static, where a count mismatch is a programmer error.
func MustCompose(segments []string, formatters []format.Formatter) format.Formatter {
	formatter, err := Compose(segments, formatters)
	if err != nil {
		panic(err)
	}
	return formatter
}

// ComposeLocal behaves exactly like Compose but converts the input timestamp
// into the local timezone before interleaving. The default converter binds
// the device's configured zone at composition time.
func ComposeLocal(segments []string, formatters []format.Formatter, opts ...Option) (format.Formatter, error) {
	base, err := Compose(segments, formatters)
	if err != nil {
		return nil, err
	}

	cfg := options{converter: localtime.Device()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	converter := cfg.converter

	return func(ts timestamp.Timestamp) string {
		return base(converter.Convert(ts))
	}, nil
}

// MustComposeLocal panics on composition failure, mirroring MustCompose.
func MustComposeLocal(segments []string, formatters []format.Formatter, opts ...Option) format.Formatter {
	formatter, err := ComposeLocal(segments, formatters, opts...)
	if err != nil {
		panic(err)
	}
	return formatter
}
