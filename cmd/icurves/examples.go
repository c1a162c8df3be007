package main

import (
	"fmt"

	"github.com/katalvlaran/icurves/description"
	"github.com/spf13/cobra"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the built-in example descriptions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, e := range description.Examples() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", e.Name, e.Informal)
			}
		},
	}
}
