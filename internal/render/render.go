// Package render draws the computed bounds of a layout tree as nested
// boxes on a character canvas. It is a demo consumer of the engine for
// the CLI; nothing in the engine depends on it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sashkit/sash"
)

// palette colors boxes by nesting depth.
var palette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("36")),  // teal
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // amber
	lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // light blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("35")),  // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
}

// Renderer draws layout trees whose bounds have been computed.
type Renderer struct {
	// Color applies depth-based colors through lipgloss. Without it the
	// output is plain box-drawing text, suitable for tests and pipes.
	Color bool
}

// New returns a plain (uncolored) renderer.
func New() *Renderer {
	return &Renderer{}
}

// cell is one canvas position: a rune and the depth that drew it.
type cell struct {
	r     rune
	depth int
}

type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, depth int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, depth: depth}
}

// box draws the outline of rect, labeled in its top border.
func (c *canvas) box(rect sash.Rect, label string, depth int) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	right, bottom := rect.Right()-1, rect.Bottom()-1
	for x := rect.X; x <= right; x++ {
		c.set(x, rect.Y, '─', depth)
		c.set(x, bottom, '─', depth)
	}
	for y := rect.Y; y <= bottom; y++ {
		c.set(rect.X, y, '│', depth)
		c.set(right, y, '│', depth)
	}
	c.set(rect.X, rect.Y, '┌', depth)
	c.set(right, rect.Y, '┐', depth)
	c.set(rect.X, bottom, '└', depth)
	c.set(right, bottom, '┘', depth)

	if limit := rect.Width - 2; len(label) > limit {
		if limit < 0 {
			limit = 0
		}
		label = label[:limit]
	}
	for i, r := range label {
		c.set(rect.X+1+i, rect.Y, r, depth)
	}
}

// Render draws root and its subtree at their current bounds. names maps
// nodes to the labels drawn in their top borders; it may be nil.
// Bounds must have been assigned (sash.Layout) before rendering.
func (r *Renderer) Render(root *sash.Container, names map[sash.Node]string) (string, error) {
	b := root.Bounds()
	if b.IsEmpty() {
		return "", fmt.Errorf("render: root has empty bounds %v", b)
	}
	cv := newCanvas(b.Right(), b.Bottom())
	r.walk(cv, root, sash.Point{}, names, 0)
	return r.print(cv), nil
}

// walk draws node at its parent's absolute origin and recurses.
func (r *Renderer) walk(cv *canvas, node sash.Node, origin sash.Point, names map[sash.Node]string, depth int) {
	b := node.Bounds()
	abs := b.Translate(origin.X, origin.Y)
	cv.box(abs, names[node], depth)

	c, ok := node.(*sash.Container)
	if !ok {
		return
	}
	for _, child := range c.Children() {
		r.walk(cv, child, sash.Point{X: abs.X, Y: abs.Y}, names, depth+1)
	}
}

// print serializes the canvas, styling runs of same-depth cells when
// color is enabled.
func (r *Renderer) print(cv *canvas) string {
	var sb strings.Builder
	for y := 0; y < cv.h; y++ {
		row := cv.cells[y*cv.w : (y+1)*cv.w]
		if !r.Color {
			for _, c := range row {
				sb.WriteRune(c.r)
			}
		} else {
			for start := 0; start < len(row); {
				end := start
				for end < len(row) && row[end].depth == row[start].depth {
					end++
				}
				var run strings.Builder
				for _, c := range row[start:end] {
					run.WriteRune(c.r)
				}
				sb.WriteString(palette[row[start].depth%len(palette)].Render(run.String()))
				start = end
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Bounds lists every node's absolute bounds in depth-first order, one
// line per node, for non-visual output.
func Bounds(root *sash.Container, names map[sash.Node]string) string {
	var sb strings.Builder
	var walk func(node sash.Node, origin sash.Point, depth int)
	walk = func(node sash.Node, origin sash.Point, depth int) {
		b := node.Bounds().Translate(origin.X, origin.Y)
		name := names[node]
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&sb, "%s%-12s x=%-4d y=%-4d w=%-4d h=%d\n",
			strings.Repeat("  ", depth), name, b.X, b.Y, b.Width, b.Height)
		if c, ok := node.(*sash.Container); ok {
			for _, child := range c.Children() {
				walk(child, sash.Point{X: b.X, Y: b.Y}, depth+1)
			}
		}
	}
	walk(root, sash.Point{}, 0)
	return sb.String()
}
