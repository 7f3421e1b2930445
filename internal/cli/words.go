package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWordsCommand creates the words command.
func NewWordsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "words [prefix]",
		Short:   "List the words of the graph in lexical order",
		Example: `  wordgraph words -c corpus.txt ne --limit 5`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := openEngine(cmd)
			if err != nil {
				return err
			}

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			for _, w := range eng.Graph().Words(prefix, limit) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of words (0 = all)")
	return cmd
}
