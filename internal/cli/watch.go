package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sashkit/sash"
	"github.com/sashkit/sash/internal/config"
	"github.com/sashkit/sash/internal/render"
)

// newWatchCmd creates the watch command: an interactive view that
// re-runs the layout against the terminal size on every resize.
func newWatchCmd() *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "watch [layout.toml]",
		Short: "Re-layout interactively on terminal resize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := config.Load(args[0])
			if err != nil {
				return err
			}
			r := render.New()
			r.Color = color
			m := newWatchModel(tree, r)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "color boxes by nesting depth")

	return cmd
}

// watchModel is the bubbletea model for the watch command. Every
// terminal resize becomes a fresh layout pass over the same tree.
type watchModel struct {
	tree  *config.Tree
	names map[sash.Node]string
	r     *render.Renderer

	view string
	err  error
}

func newWatchModel(tree *config.Tree, r *render.Renderer) watchModel {
	return watchModel{tree: tree, names: nameIndex(tree), r: r}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.relayout(msg.Width, msg.Height-1)
	}
	return m, nil
}

// relayout assigns the terminal extent to the root and redraws. Errors
// are shown in place of the canvas rather than quitting, so shrinking a
// terminal past a cyclic description stays recoverable.
func (m *watchModel) relayout(width, height int) {
	if width < 2 || height < 2 {
		m.view, m.err = "", nil
		return
	}
	m.tree.Root.SetBounds(sash.NewRect(0, 0, width, height))
	if _, err := sash.Layout(m.tree.Root, true); err != nil {
		m.err = err
		return
	}
	m.view, m.err = m.r.Render(m.tree.Root, m.names)
}

func (m watchModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("layout failed: %v\n\npress q to quit", m.err)
	}
	if m.view == "" {
		return "waiting for terminal size..."
	}
	return m.view + "q: quit"
}
