package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andribas404/aho-corasick/meta"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PATTERN",
		Short: "Show how a pattern compiles",
		Long:  `Print the segments of PATTERN and the automaton and prefilter chosen for it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := engineConfig(v)
			if err != nil {
				return err
			}
			engine, err := meta.CompileWithConfig([]byte(args[0]), config)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "pattern\t%s\n", args[0])
			fmt.Fprintf(tw, "length\t%d\n", engine.PatternLen())
			fmt.Fprintf(tw, "segments\t%d\n", len(engine.Segments()))
			for i, s := range engine.Segments() {
				fmt.Fprintf(tw, "  #%d\t%q start=%d end=%d\n", i, s.String(), s.Start(), s.End)
			}
			fmt.Fprintf(tw, "strategy\t%s\n", engine.Strategy())
			fmt.Fprintf(tw, "states\t%d\n", engine.NumStates())
			fmt.Fprintf(tw, "prefilter\t%s\n", engine.PrefilterKind())
			fmt.Fprintf(tw, "heap bytes\t%d\n", engine.HeapBytes())
			return tw.Flush()
		},
	}
}
