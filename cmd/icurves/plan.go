package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/icurves/recompose"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *app) *cobra.Command {
	var example, strategy string
	cmd := &cobra.Command{
		Use:   "plan [description]",
		Short: "Print the curve additions a layout would perform",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDescription(example, args)
			if err != nil {
				return err
			}
			s, err := recompose.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			steps, err := recompose.Plan(d, s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, st := range steps {
				zones := make([]string, len(st.Data.Split))
				for k, z := range st.Data.Split {
					zones[k] = z.String()
				}
				fmt.Fprintf(out, "%d\t+%s\tsplits %s\t%s\n", i, st.Data.Added, strings.Join(zones, " "), kindOf(st.Data))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&example, "example", "e", "", "plan a catalogue example by name")
	cmd.Flags().StringVar(&strategy, "strategy", "innermost", "innermost or pierced-first")

	return cmd
}

func kindOf(d recompose.Data) string {
	switch {
	case d.IsNested():
		return "nested"
	case d.IsSinglePiercing():
		return "single-piercing"
	case d.IsMaybeDoublePiercing():
		return "double-piercing?"
	}

	return "cycle"
}
