package cli

import (
	"fmt"

	"github.com/sanonone/wordgraph/pkg/render"
	"github.com/spf13/cobra"
)

// NewPathCommand creates the path command.
func NewPathCommand() *cobra.Command {
	var withDOT bool

	cmd := &cobra.Command{
		Use:   "path <word1> [word2]",
		Short: "Find the shortest path between two words",
		Long: `Print the minimum-weight path from word1 to word2. With a single word,
print the shortest path from it to every reachable word.`,
		Example: `  wordgraph path -c corpus.txt to and
  wordgraph path -c corpus.txt to`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := openEngine(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				results := eng.ShortestPathsFrom(args[0])
				if len(results) == 0 {
					_, _ = fmt.Fprintf(out, "No word is reachable from %s!\n", args[0])
				}
				for _, res := range results {
					_, _ = fmt.Fprintln(out, res.String())
				}
				return nil
			}

			res := eng.ShortestPath(args[0], args[1])
			_, _ = fmt.Fprintln(out, res.String())

			if withDOT {
				return writeDOTFile(cmd, cfg.DOTOutput, eng.Graph(), render.ForPath(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDOT, "dot", false, "Also write the graph with the path highlighted")
	return cmd
}
