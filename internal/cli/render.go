package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sashkit/sash"
	"github.com/sashkit/sash/internal/config"
	"github.com/sashkit/sash/internal/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	width  int  // canvas width; 0 uses the tree's preferred width
	height int  // canvas height; 0 uses the tree's preferred height
	color  bool // depth-based colors on the canvas
	bounds bool // print a bounds listing instead of the canvas
}

// newRenderCmd creates the render command: load a description, lay it
// out once at a fixed size, print the result.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [layout.toml]",
		Short: "Compute a layout and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runRender(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", 0, "canvas width (default: preferred width)")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 0, "canvas height (default: preferred height)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "color boxes by nesting depth")
	cmd.Flags().BoolVar(&opts.bounds, "bounds", false, "print a bounds listing instead of drawing")

	return cmd
}

// runRender loads, lays out, and serializes one layout description.
func runRender(path string, opts renderOpts) (string, error) {
	tree, err := config.Load(path)
	if err != nil {
		return "", err
	}
	if err := layoutAt(tree, opts.width, opts.height); err != nil {
		return "", err
	}

	names := nameIndex(tree)
	if opts.bounds {
		return render.Bounds(tree.Root, names), nil
	}
	r := render.New()
	r.Color = opts.color
	return r.Render(tree.Root, names)
}

// layoutAt sizes the tree's root to the given extent, consulting the
// preferred size for any dimension left at zero, and runs the layout.
func layoutAt(tree *config.Tree, width, height int) error {
	wHint, hHint := sash.Unconstrained, sash.Unconstrained
	if width > 0 {
		wHint = width
	}
	if height > 0 {
		hHint = height
	}
	size, err := sash.ComputeSize(tree.Root, wHint, hHint, true)
	if err != nil {
		return fmt.Errorf("compute size: %w", err)
	}
	tree.Root.SetBounds(sash.NewRect(0, 0, size.Width, size.Height))
	if _, err := sash.Layout(tree.Root, true); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	return nil
}

// nameIndex inverts the tree's name table for rendering labels.
func nameIndex(tree *config.Tree) map[sash.Node]string {
	names := make(map[sash.Node]string, len(tree.Named))
	for name, node := range tree.Named {
		names[node] = name
	}
	return names
}
