package cli

import (
	"fmt"
	"strings"

	"github.com/sanonone/wordgraph/pkg/render"
	"github.com/spf13/cobra"
)

// NewAugmentCommand creates the augment command.
func NewAugmentCommand() *cobra.Command {
	var withDOT bool

	cmd := &cobra.Command{
		Use:   "augment <text...>",
		Short: "Insert bridge words into a text",
		Long: `Tokenize the text like the corpus and, between every pair of adjacent words
that has bridge words, insert one of them chosen at random.`,
		Example: `  wordgraph augment -c corpus.txt "Seek to explore new and exciting synergies"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := openEngine(cmd)
			if err != nil {
				return err
			}

			res := eng.Augment(strings.Join(args, " "))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.String())

			if withDOT {
				return writeDOTFile(cmd, cfg.DOTOutput, eng.Graph(), render.ForAugment(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDOT, "dot", false, "Also write the graph with the inserted words highlighted")
	return cmd
}
