package commands

import (
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-stamp/pkg/format"
	"github.com/goliatone/go-stamp/pkg/prompt"
	"github.com/goliatone/go-stamp/pkg/template"
	"github.com/goliatone/go-stamp/pkg/timestamp"
)

var formatFlags struct {
	year        int
	month       int
	day         int
	hours       int
	minutes     int
	seconds     float64
	templateID  string
	pattern     string
	local       bool
	interactive bool
	definitions string
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Render a timestamp through a template or strftime pattern",
	RunE:  runFormat,
}

func init() {
	flags := formatCmd.Flags()
	flags.IntVar(&formatFlags.year, "year", 1970, "calendar year")
	flags.IntVar(&formatFlags.month, "month", 1, "month, 1-12")
	flags.IntVar(&formatFlags.day, "day", 1, "day of month")
	flags.IntVar(&formatFlags.hours, "hours", 0, "hour, 24h clock")
	flags.IntVar(&formatFlags.minutes, "minutes", 0, "minute")
	flags.Float64Var(&formatFlags.seconds, "seconds", 0, "seconds, fractional part kept")
	flags.StringVar(&formatFlags.templateID, "template", "", "template name (builtin or from --definitions)")
	flags.StringVar(&formatFlags.pattern, "pattern", "", "strftime pattern, overrides --template")
	flags.BoolVar(&formatFlags.local, "local", false, "render in the device's local timezone")
	flags.BoolVar(&formatFlags.interactive, "interactive", false, "gather fields through prompts")
	flags.StringVar(&formatFlags.definitions, "definitions", "", "directory of YAML template definitions")

	RootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	templates, err := availableTemplates(formatFlags.definitions)
	if err != nil {
		return err
	}

	ts := timestamp.Timestamp{
		Year:    formatFlags.year,
		Month:   formatFlags.month,
		Day:     formatFlags.day,
		Hours:   formatFlags.hours,
		Minutes: formatFlags.minutes,
		Seconds: formatFlags.seconds,
	}

	name := formatFlags.templateID
	if formatFlags.interactive {
		driver := prompt.NewSurveyDriver()
		ts, err = promptTimestamp(cmd.Context(), driver)
		if err != nil {
			return err
		}
		if name == "" && formatFlags.pattern == "" {
			name, err = promptTemplate(cmd.Context(), driver, templateNames(templates))
			if err != nil {
				return err
			}
		}
	}

	formatter, err := resolveFormatter(name, templates)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter(timestamp.Normalize(ts)))
	return nil
}

// availableTemplates merges the builtin presets with any YAML-defined
// templates from the definitions directory.
func availableTemplates(dir string) (template.Definitions, error) {
	templates := template.Definitions{
		"iso":       template.ISO8601,
		"local-iso": template.LocalISO8601,
	}
	if dir == "" {
		return templates, nil
	}

	loaded, err := template.LoadFS(os.DirFS(dir), format.Builtin())
	if err != nil {
		return nil, err
	}
	for name, formatter := range loaded {
		if _, exists := templates[name]; exists {
			return nil, fmt.Errorf("template %q shadows a builtin preset", name)
		}
		templates[name] = formatter
	}
	log.WithField("dir", dir).WithField("count", len(loaded)).Debug("loaded template definitions")
	return templates, nil
}

func resolveFormatter(name string, templates template.Definitions) (format.Formatter, error) {
	if formatFlags.pattern != "" {
		log.WithField("pattern", formatFlags.pattern).Debug("using strftime pattern")
		return format.Strftime(formatFlags.pattern)
	}

	if name == "" {
		name = "iso"
		if formatFlags.local {
			name = "local-iso"
		}
	}

	formatter, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q (have %v)", name, templateNames(templates))
	}
	log.WithField("template", name).Debug("resolved template")
	return formatter, nil
}

func templateNames(templates template.Definitions) []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
