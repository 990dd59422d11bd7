package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/digraph/dijkstra"
	"github.com/katalvlaran/digraph/paths"
)

// newSPCmd creates the sp command: single-source (or multi-source)
// shortest paths with Dijkstra. With --to it additionally reconstructs
// and prints the shortest path to the given destination.
func newSPCmd() *cobra.Command {
	var (
		to          string
		maxDistance int64
	)

	cmd := &cobra.Command{
		Use:   "sp <file> <source>...",
		Short: "Single-source shortest paths (Dijkstra)",
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

			opts := []dijkstra.Option{dijkstra.Sources(sources...)}
			if to != "" {
				opts = append(opts, dijkstra.WithReturnPath())
			}
			if maxDistance >= 0 {
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}

			dist, pred, err := dijkstra.Run(d, opts...)
			if err != nil {
				return err
			}

			if to == "" {
				printDistances(c, dist)

				return nil
			}

			dest, err := strconv.Atoi(to)
			if err != nil {
				return fmt.Errorf("destination %q: %w", to, err)
			}
			if dest < 0 || dest >= d.Order() || dist[dest] == dijkstra.Unreachable {
				return fmt.Errorf("no path to vertex %s", to)
			}

			// pred chains run destination -> source; reverse for display
			path, ok := pred.SearchBy(dest, func(v int) bool { return pred[v] == paths.None })
			if !ok {
				return fmt.Errorf("no path to vertex %s", to)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			logger.Infof("distance %d over %d arcs", dist[dest], len(path)-1)
			for _, v := range path {
				fmt.Fprintf(c.OutOrStdout(), "%d\n", v)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "destination vertex: print the shortest path instead of all distances")
	cmd.Flags().Int64Var(&maxDistance, "max-distance", -1, "cap on explored distance (-1 = no cap)")

	return cmd
}

func printDistances(c *cobra.Command, dist []int64) {
	for v, dv := range dist {
		if dv == dijkstra.Unreachable {
			fmt.Fprintf(c.OutOrStdout(), "%d\t-\n", v)

			continue
		}
		fmt.Fprintf(c.OutOrStdout(), "%d\t%d\n", v, dv)
	}
}
