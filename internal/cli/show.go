package cli

import (
	"github.com/sanonone/wordgraph/pkg/render"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the whole word graph",
		Long: `Write the word graph as a Graphviz DOT file (see --dot-output), or print
every edge with its weight as a table.`,
		Example: `  wordgraph show -c corpus.txt
  wordgraph show -c corpus.txt --table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cfg, err := openEngine(cmd)
			if err != nil {
				return err
			}

			if asTable {
				render.WriteStatsTable(cmd.OutOrStdout(), eng.Stats())
				render.WriteEdgeTable(cmd.OutOrStdout(), eng.Graph().Edges())
				return nil
			}
			return writeDOTFile(cmd, cfg.DOTOutput, eng.Graph(), render.NewAnnotations())
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "Print the edges as a table instead of writing DOT")
	return cmd
}
