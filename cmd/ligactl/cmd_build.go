package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"liga-app/internal/source"
)

func newBuildCommand() *cobra.Command {
	var dataRoot string
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the YAML season tree into one JSON payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := output
			if target == "" {
				target = filepath.Join(dataRoot, "divisions.json")
			}
			if err := source.Compile(dataRoot, target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "compiled %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataRoot, "data", "data", "Root directory containing season.yml, rules.yml and divisions/")
	cmd.Flags().StringVar(&output, "output", "", "Target JSON file (default: <data>/divisions.json)")

	return cmd
}
