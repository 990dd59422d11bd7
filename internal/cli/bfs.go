package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/digraph/bfs"
)

// newBFSCmd creates the bfs command: breadth-first distances from one
// or more source vertices.
func newBFSCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "bfs <file> <source>...",
		Short: "Breadth-first distances from one or more sources",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			d, err := loadDigraph(args[0])
			if err != nil {
				return err
			}
			sources, err := parseSources(args[1:])
			if err != nil {
				return err
			}
			logger.Debugf("loaded digraph: order=%d size=%d", d.Order(), d.Size())

			res, err := bfs.Traverse(d, sources,
				bfs.WithContext(c.Context()),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}

			logger.Infof("visited %d of %d vertices", len(res.Order), d.Order())
			for v, depth := range res.Depth {
				if depth == bfs.Unreachable {
					fmt.Fprintf(c.OutOrStdout(), "%d\t-\n", v)

					continue
				}
				fmt.Fprintf(c.OutOrStdout(), "%d\t%d\n", v, depth)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop exploring beyond this depth (0 = no limit)")

	return cmd
}
