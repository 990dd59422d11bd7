package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/digraph/johnson"
)

// newCircuitsCmd creates the circuits command: elementary circuit
// enumeration, one circuit per output line. The run is cancellable via
// the command context since dense digraphs can carry exponentially many
// circuits.
func newCircuitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "circuits <file>",
		Short: "Elementary circuits (Johnson)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			d, err := loadDigraph(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded digraph: order=%d size=%d", d.Order(), d.Size())

			circs, err := johnson.CircuitsCtx(c.Context(), d)
			if err != nil {
				return err
			}

			logger.Infof("%d circuits", len(circs))
			for _, circ := range circs {
				fmt.Fprintln(c.OutOrStdout(), joinInts(circ))
			}

			return nil
		},
	}
}
