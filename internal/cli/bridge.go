package cli

import (
	"fmt"

	"github.com/sanonone/wordgraph/pkg/render"
	"github.com/spf13/cobra"
)

// NewBridgeCommand creates the bridge command.
func NewBridgeCommand() *cobra.Command {
	var withDOT bool

	cmd := &cobra.Command{
		Use:   "bridge <word1> <word2>",
		Short: "List the bridge words between two words",
		Long: `A bridge word w connects word1 to word2 when the corpus contains both
"word1 w" and "w word2".`,
		Example: `  wordgraph bridge -c corpus.txt new and`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := openEngine(cmd)
			if err != nil {
				return err
			}

			res := eng.BridgeWords(args[0], args[1])
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.String())

			if withDOT {
				return writeDOTFile(cmd, cfg.DOTOutput, eng.Graph(), render.ForBridge(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDOT, "dot", false, "Also write the graph with the bridge words highlighted")
	return cmd
}
