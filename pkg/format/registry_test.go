package format

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stamp/pkg/timestamp"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("year", Year); err != nil {
		t.Fatalf("register: %v", err)
	}

	formatter, err := r.Get("year")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := formatter(timestamp.Timestamp{Year: 2021}); got != "2021" {
		t.Fatalf("expected 2021, got %q", got)
	}
}

func TestRegistry_DuplicateNameFails(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("year", Year); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register("year", Year4); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewRegistry().Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty name")
		}
	}()
	NewRegistry().MustRegister("", Year)
}

func TestBuiltin_CoversEveryFormatter(t *testing.T) {
	want := []string{
		"ampm", "day", "day2", "dayofweek", "floorseconds", "floorseconds2",
		"hours", "hours12", "hours122", "hours2", "minutes", "minutes2",
		"month", "month2", "monthname", "seconds", "seconds2", "secondsms",
		"shortyear", "year", "year4",
	}
	sort.Strings(want)

	if diff := cmp.Diff(want, Builtin().Names()); diff != "" {
		t.Fatalf("builtin names mismatch (-want +got):\n%s", diff)
	}
}
