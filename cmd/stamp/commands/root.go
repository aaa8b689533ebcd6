package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool

// RootCmd is the entry point of the stamp command tree.
var RootCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Render calendar timestamps through composable templates",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the command tree, logging and exiting on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
