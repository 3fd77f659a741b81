package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sashkit/sash"
)

var (
	version = "dev" // semantic version (e.g. "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the sash CLI and returns an error if any command fails.
//
// With --verbose the logger drops to debug level and is installed as
// the engine's diagnostic sink, so clamped hints and dropped
// attachments become visible.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "sash",
		Short:        "sash computes and visualizes container layouts",
		Long:         `sash loads a layout description from a TOML file, negotiates sizes and positions for every node in the tree, and prints the result as a bounds listing or as boxes on a character canvas.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if verbose {
				sash.SetDiagnostics(logger)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("sash %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newWatchCmd())

	return root.ExecuteContext(context.Background())
}
