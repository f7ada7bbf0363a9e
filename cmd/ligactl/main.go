package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "ligactl",
		Short:         "Manage league season data",
		Long:          "ligactl edits the YAML season tree, compiles it into the JSON payload consumed by the service, and prints computed standings.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newBuildCommand(),
		newSetMatchCommand(),
		newAddMatchCommand(),
		newStandingsCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
