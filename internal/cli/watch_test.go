package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/sashkit/sash/internal/config"
	"github.com/sashkit/sash/internal/render"
)

func watchFixture(t *testing.T, doc string) watchModel {
	t.Helper()
	tree, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	return newWatchModel(tree, render.New())
}

func TestWatchModel_Resize(t *testing.T) {
	m := watchFixture(t, sampleLayout)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 20, Height: 9})
	require.Nil(t, cmd)

	view := next.View()
	require.Contains(t, view, "┌header")
	require.Contains(t, view, "q: quit")

	// A second resize recomputes against the new extent.
	next, _ = next.(watchModel).Update(tea.WindowSizeMsg{Width: 40, Height: 9})
	wide := strings.Split(next.View(), "\n")[0]
	require.Len(t, []rune(wide), 40)
}

func TestWatchModel_TinyTerminal(t *testing.T) {
	m := watchFixture(t, sampleLayout)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 1, Height: 1})
	require.Contains(t, next.View(), "waiting for terminal size")
}

func TestWatchModel_Quit(t *testing.T) {
	m := watchFixture(t, sampleLayout)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd, "q should quit")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd, "esc should quit")
}

func TestWatchModel_LayoutErrorShownInPlace(t *testing.T) {
	m := watchFixture(t, `
[root]
strategy = "form"

[[root.children]]
name = "a"
width = 10
height = 2
  [root.children.left]
  target = "b"
  edge = "end"

[[root.children]]
name = "b"
width = 10
height = 2
  [root.children.left]
  target = "a"
  edge = "end"
`)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	require.Contains(t, next.View(), "layout failed")
}
