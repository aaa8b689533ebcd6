package template

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-stamp/pkg/format"
	"github.com/goliatone/go-stamp/pkg/testsupport"
)

func TestParse_ComposesDeclaredTemplates(t *testing.T) {
	doc := []byte(`
templates:
  date:
    tokens:
      - field: year4
      - literal: "-"
      - field: month2
      - literal: "-"
      - field: day2
`)

	defs, err := Parse(doc, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	formatter, ok := defs["date"]
	if !ok {
		t.Fatalf("expected template %q, have %v", "date", defs)
	}
	if got := formatter(testsupport.MorningUTC()); got != "2021-05-01" {
		t.Fatalf("expected 2021-05-01, got %q", got)
	}
}

func TestParse_AdjacentFieldsGetEmptySeparators(t *testing.T) {
	doc := []byte(`
templates:
  clock:
    tokens:
      - field: hours2
      - field: minutes2
`)

	defs, err := Parse(doc, format.Builtin())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := defs["clock"](testsupport.MorningUTC()); got != "1158" {
		t.Fatalf("expected 1158, got %q", got)
	}
}

func TestParse_UnknownField(t *testing.T) {
	doc := []byte(`
templates:
  broken:
    tokens:
      - field: nanoseconds
`)

	_, err := Parse(doc, nil)
	if !errors.Is(err, format.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParse_TokenSetsBothKinds(t *testing.T) {
	doc := []byte(`
templates:
  broken:
    tokens:
      - field: year
        literal: "x"
`)

	if _, err := Parse(doc, nil); err == nil {
		t.Fatalf("expected ambiguous token to fail")
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	if _, err := Parse([]byte("  \n"), nil); err == nil {
		t.Fatalf("expected empty document to fail")
	}
}

func TestParse_NoTokens(t *testing.T) {
	doc := []byte(`
templates:
  empty:
    tokens: []
`)

	if _, err := Parse(doc, nil); err == nil {
		t.Fatalf("expected empty token list to fail")
	}
}

func TestParse_LocalTemplateRoutesThroughConverter(t *testing.T) {
	doc := []byte(`
templates:
  local-clock:
    local: true
    tokens:
      - field: hours2
      - literal: ":"
      - field: minutes2
`)

	defs, err := Parse(doc, nil, WithConverter(testsupport.FixedConverter()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// MorningUTC is 11:58 UTC; the fixture zone sits at +2.
	if got := defs["local-clock"](testsupport.MorningUTC()); got != "13:58" {
		t.Fatalf("expected 13:58, got %q", got)
	}
}

func TestLoadFS_MergesFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"date.yaml": &fstest.MapFile{Data: []byte(`
templates:
  date:
    tokens:
      - field: year4
`)},
		"nested/clock.yml": &fstest.MapFile{Data: []byte(`
templates:
  clock:
    tokens:
      - field: hours2
`)},
		"ignored.txt": &fstest.MapFile{Data: []byte("not yaml")},
	}

	defs, err := LoadFS(fsys, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(defs))
	}
	if got := defs["date"](testsupport.MorningUTC()); got != "2021" {
		t.Fatalf("expected 2021, got %q", got)
	}
}

func TestLoadFS_DuplicateTemplateName(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte(`
templates:
  date:
    tokens:
      - field: year4
`)},
		"b.yaml": &fstest.MapFile{Data: []byte(`
templates:
  date:
    tokens:
      - field: shortyear
`)},
	}

	if _, err := LoadFS(fsys, nil); err == nil {
		t.Fatalf("expected duplicate template name to fail")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	defs, err := LoadFS(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(defs) != 0 {
		t.Fatalf("expected empty set, got %v", defs)
	}
}
