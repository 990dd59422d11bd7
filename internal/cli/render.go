package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/digraph/dot"
)

// newRenderCmd creates the render command: DOT export, optionally laid
// out to SVG with the embedded Graphviz engine.
func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Export a digraph as Graphviz DOT or SVG",
		Long: `Export a digraph as Graphviz DOT text, or as an SVG when --output
names a file ending in .svg. Weighted digraphs carry their weights as
edge labels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())

			d, err := loadDigraph(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded digraph: order=%d size=%d", d.Order(), d.Size())

			src, err := dot.Marshal(d)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprint(c.OutOrStdout(), src)

				return nil
			}

			data := []byte(src)
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				if data, err = dot.RenderSVG(c.Context(), src); err != nil {
					return err
				}
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Infof("wrote %s (%d bytes)", output, len(data))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty; .svg renders with Graphviz)")

	return cmd
}
