package cmd

import (
	"fmt"

	"github.com/mimiqdev/pokescript/internal/generation"
	"github.com/spf13/cobra"
)

func newGenerationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generations",
		Aliases: []string{"gens"},
		Short:   "Print the national dex range of each generation",
		Long: `Print the national dex id range covered by each generation.

These are the generations accepted by --random, e.g.
  pokescript --random=3     # ids 252-386
  pokescript --random=1-2   # ids 1-251`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, r := range generation.All() {
				fmt.Fprintf(out, "Generation %d: %3d-%3d (%d pokemon)\n", r.Generation, r.FirstID, r.LastID, r.Size())
			}
			return nil
		},
	}
}
