package format

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound reports a lookup for a formatter name the registry never saw.
var ErrNotFound = errors.New("formatter not found")

// Registry stores formatters by canonical lowercase name, providing discovery
// and duplication safeguards for template loaders and CLI surfaces. Writes
// happen at setup time; steady-state reads are lock-cheap.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter under name. Duplicate names return an error.
func (r *Registry) Register(name string, formatter Formatter) error {
	if name == "" {
		return fmt.Errorf("format: formatter name is required")
	}
	if formatter == nil {
		return fmt.Errorf("format: formatter %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[name]; exists {
		return fmt.Errorf("format: formatter %q already registered", name)
	}

	r.formatters[name] = formatter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, formatter Formatter) {
	if err := r.Register(name, formatter); err != nil {
		panic(err)
	}
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formatter, ok := r.formatters[name]
	if !ok {
		return nil, fmt.Errorf("format: %q: %w", name, ErrNotFound)
	}
	return formatter, nil
}

// Names returns the sorted list of registered formatter names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a registry preloaded with every field formatter in this
// package under its canonical lowercase name.
func Builtin() *Registry {
	r := NewRegistry()
	for name, formatter := range map[string]Formatter{
		"year":          Year,
		"month":         Month,
		"day":           Day,
		"hours":         Hours,
		"minutes":       Minutes,
		"seconds":       Seconds,
		"year4":         Year4,
		"shortyear":     ShortYear,
		"month2":        Month2,
		"day2":          Day2,
		"hours2":        Hours2,
		"minutes2":      Minutes2,
		"hours12":       Hours12,
		"hours122":      Hours122,
		"ampm":          AMPM,
		"monthname":     MonthName,
		"dayofweek":     DayOfWeek,
		"seconds2":      Seconds2,
		"floorseconds":  FloorSeconds,
		"floorseconds2": FloorSeconds2,
		"secondsms":     SecondsMs,
	} {
		r.MustRegister(name, formatter)
	}
	return r
}
