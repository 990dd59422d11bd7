// Package cli implements the digraph command-line interface.
//
// The commands load a digraph from an arc-list text file or a TOML
// file and run one of the library's algorithms over it:
//
//   - bfs:      breadth-first distances from one or more sources
//   - dfs:      depth-first pre-order from one or more sources
//   - sp:       single-source shortest paths (Dijkstra)
//   - scc:      strongly connected components (Tarjan)
//   - circuits: elementary circuit enumeration (Johnson)
//   - render:   Graphviz DOT export and SVG rendering
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the digraph CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose switches
// to debug. The logger is attached to the command context and
// accessible to all commands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "digraph",
		Short:        "digraph runs graph algorithms over arc-list or TOML digraph files",
		Long:         `digraph loads a directed graph from an arc-list text file or a TOML file and runs traversals, shortest paths, component decomposition, or circuit enumeration over it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("digraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBFSCmd())
	root.AddCommand(newDFSCmd())
	root.AddCommand(newSPCmd())
	root.AddCommand(newSCCCmd())
	root.AddCommand(newCircuitsCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(context.Background())
}
