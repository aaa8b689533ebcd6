package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-stamp/pkg/format"
)

var templatesFlags struct {
	definitions string
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List field formatters and available templates",
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesFlags.definitions, "definitions", "", "directory of YAML template definitions")
	RootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	templates, err := availableTemplates(templatesFlags.definitions)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "templates:")
	for _, name := range templateNames(templates) {
		fmt.Fprintf(out, "  %s\n", name)
	}

	fmt.Fprintln(out, "formatters:")
	for _, name := range format.Builtin().Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
