package template

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-stamp/pkg/format"
)

// Definitions maps declared template names to their composed formatters.
type Definitions map[string]format.Formatter

// Parse reads a single YAML definition document and composes every template
// it declares. Field tokens resolve against reg; a nil registry falls back to
// the builtin formatters. Templates flagged local route through ComposeLocal
// with the supplied options.
func Parse(data []byte, reg *format.Registry, opts ...Option) (Definitions, error) {
	if reg == nil {
		reg = format.Builtin()
	}

	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("template: definition document is empty")
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("template: parse definitions: %w", err)
	}

	defs := make(Definitions, len(doc.Templates))
	for name, decl := range doc.Templates {
		id := strings.TrimSpace(name)
		if id == "" {
			return nil, fmt.Errorf("template: definition with an empty name")
		}

		formatter, err := composeDefinition(id, decl, reg, opts)
		if err != nil {
			return nil, err
		}
		defs[id] = formatter
	}
	return defs, nil
}

// LoadFS walks the provided filesystem and parses every .yaml/.yml definition
// file. Template names must be unique across the whole tree. When fsys is nil
// the returned set is empty.
func LoadFS(fsys fs.FS, reg *format.Registry, opts ...Option) (Definitions, error) {
	defs := make(Definitions)
	if fsys == nil {
		return defs, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", path, err)
		}

		parsed, err := Parse(data, reg, opts...)
		if err != nil {
			return fmt.Errorf("template: file %s: %w", path, err)
		}

		for name, formatter := range parsed {
			if _, exists := defs[name]; exists {
				return fmt.Errorf("template: duplicate template %q (file %s)", name, path)
			}
			defs[name] = formatter
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return defs, nil
}

type documentFile struct {
	Templates map[string]templateFile `yaml:"templates"`
}

type templateFile struct {
	Local  bool        `yaml:"local"`
	Tokens []tokenFile `yaml:"tokens"`
}

// tokenFile is either a literal or a field reference; Literal is a pointer so
// an explicit empty literal stays distinguishable from an absent key.
type tokenFile struct {
	Literal *string `yaml:"literal"`
	Field   string  `yaml:"field"`
}

func composeDefinition(name string, decl templateFile, reg *format.Registry, opts []Option) (format.Formatter, error) {
	if len(decl.Tokens) == 0 {
		return nil, fmt.Errorf("template: definition %q declares no tokens", name)
	}

	// Adjacent field tokens get an implicit empty literal between them, so the
	// token list compiles into the strict segment/formatter alternation the
	// composer requires.
	segments := []string{""}
	var formatters []format.Formatter

	for i, token := range decl.Tokens {
		switch {
		case token.Literal != nil && token.Field != "":
			return nil, fmt.Errorf("template: definition %q token %d sets both literal and field", name, i)
		case token.Literal != nil:
			segments[len(segments)-1] += *token.Literal
		case token.Field != "":
			formatter, err := reg.Get(strings.ToLower(strings.TrimSpace(token.Field)))
			if err != nil {
				return nil, fmt.Errorf("template: definition %q token %d: %w", name, i, err)
			}
			formatters = append(formatters, formatter)
			segments = append(segments, "")
		default:
			return nil, fmt.Errorf("template: definition %q token %d is empty", name, i)
		}
	}

	if decl.Local {
		return ComposeLocal(segments, formatters, opts...)
	}
	return Compose(segments, formatters)
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
