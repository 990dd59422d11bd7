package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/scc"
)

// newSCCCmd creates the scc command: strongly connected components,
// one per output line, members ascending.
func newSCCCmd() *cobra.Command {
	var condense bool

	cmd := &cobra.Command{
		Use:   "scc <file>",
		Short: "Strongly connected components (Tarjan)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			d, err := loadDigraph(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded digraph: order=%d size=%d", d.Order(), d.Size())

			if condense {
				return printCondensation(c, d)
			}

			comps, err := scc.StronglyConnected(d)
			if err != nil {
				return err
			}

			logger.Infof("%d components", len(comps))
			for _, comp := range comps {
				fmt.Fprintln(c.OutOrStdout(), joinInts(comp))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&condense, "condense", false, "print the component DAG instead of the components")

	return cmd
}

func printCondensation(c *cobra.Command, d core.Digraph) error {
	cond, member, err := scc.Condensation(d)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.OutOrStdout(), "components: %d\n", cond.Order())
	for v, m := range member {
		fmt.Fprintf(c.OutOrStdout(), "%d\t%d\n", v, m)
	}
	for _, a := range cond.Arcs() {
		fmt.Fprintf(c.OutOrStdout(), "%d -> %d\n", a[0], a[1])
	}

	return nil
}

// joinInts formats a vertex list as space-separated decimals.
func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, " ")
}
