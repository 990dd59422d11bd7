package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/digraph/dfs"
)

// newDFSCmd creates the dfs command: depth-first pre-order from one or
// more source vertices.
func newDFSCmd() *cobra.Command {
	var (
		maxDepth int
		full     bool
	)

	cmd := &cobra.Command{
		Use:   "dfs <file> <source>...",
		Short: "Depth-first pre-order from one or more sources",
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

			opts := []dfs.Option{dfs.WithContext(c.Context())}
			if maxDepth >= 0 {
				opts = append(opts, dfs.WithMaxDepth(maxDepth))
			}
			if full {
				opts = append(opts, dfs.WithFullTraversal())
			}
			res, err := dfs.Traverse(d, sources, opts...)
			if err != nil {
				return err
			}

			logger.Infof("visited %d of %d vertices", len(res.Order), d.Order())
			for _, v := range res.Order {
				fmt.Fprintf(c.OutOrStdout(), "%d\t%d\n", v, res.Depth[v])
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "stop exploring beyond this depth (-1 = no limit)")
	cmd.Flags().BoolVar(&full, "full", false, "restart from every unvisited vertex to cover the whole digraph")

	return cmd
}
