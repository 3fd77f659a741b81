package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/sashkit/sash"
)

func TestParse_Grid(t *testing.T) {
	doc := []byte(`
[root]
strategy = "grid"
columns = 2
hspacing = 0
vspacing = 0

[[root.children]]
name = "banner"
width = 40
height = 10
colspan = 2
halign = "fill"

[[root.children]]
name = "left"
width = 40
height = 10

[[root.children]]
name = "right"
width = 40
height = 10
`)
	tree, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, tree.Named, 3)

	size, err := sash.ComputeSize(tree.Root, sash.Unconstrained, sash.Unconstrained, false)
	require.NoError(t, err)
	require.Equal(t, sash.NewSize(80, 20), size)

	tree.Root.SetBounds(sash.NewRect(0, 0, 80, 20))
	_, err = sash.Layout(tree.Root, false)
	require.NoError(t, err)

	got := map[string]sash.Rect{}
	for name, node := range tree.Named {
		got[name] = node.Bounds()
	}
	want := map[string]sash.Rect{
		"banner": sash.NewRect(0, 0, 80, 10),
		"left":   sash.NewRect(0, 10, 40, 10),
		"right":  sash.NewRect(40, 10, 40, 10),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RowOverrides(t *testing.T) {
	doc := []byte(`
[root]
strategy = "row"
axis = "vertical"
wrap = false
pack = false
spacing = 7
justify = true

[[root.children]]
width = 10
height = 10
`)
	tree, err := Parse(doc)
	require.NoError(t, err)

	row, ok := tree.Root.Strategy().(*sash.Row)
	require.True(t, ok)
	require.Equal(t, sash.Vertical, row.Axis)
	require.False(t, row.Wrap)
	require.False(t, row.Pack)
	require.True(t, row.Justify)
	require.Equal(t, 7, row.Spacing)
}

func TestParse_FormAttachments(t *testing.T) {
	doc := []byte(`
[root]
strategy = "form"

[[root.children]]
name = "anchor"
width = 40
height = 10

[[root.children]]
name = "tail"
width = 30
height = 10
  [root.children.left]
  target = "anchor"
  offset = 5
  [root.children.top]
  percent = 50
`)
	tree, err := Parse(doc)
	require.NoError(t, err)

	tree.Root.SetBounds(sash.NewRect(0, 0, 200, 100))
	_, err = sash.Layout(tree.Root, false)
	require.NoError(t, err)

	require.Equal(t, sash.NewRect(45, 50, 30, 10), tree.Named["tail"].Bounds())
}

func TestParse_StackTopControl(t *testing.T) {
	doc := []byte(`
[root]
strategy = "stack"
top-control = "page2"

[[root.children]]
name = "page1"
width = 40
height = 10

[[root.children]]
name = "page2"
width = 20
height = 30
`)
	tree, err := Parse(doc)
	require.NoError(t, err)

	tree.Root.SetBounds(sash.NewRect(0, 0, 100, 50))
	_, err = sash.Layout(tree.Root, false)
	require.NoError(t, err)

	require.Equal(t, sash.NewRect(0, 0, 100, 50), tree.Named["page2"].Bounds())
	require.Equal(t, sash.NewRect(0, 0, 0, 0), tree.Named["page1"].Bounds())
}

func TestParse_NestedContainers(t *testing.T) {
	doc := []byte(`
[root]
strategy = "fill"
axis = "vertical"
margins = [2]

[[root.children]]
name = "toolbar"
strategy = "row"
spacing = 0

[[root.children.children]]
name = "button"
width = 10
height = 5
`)
	tree, err := Parse(doc)
	require.NoError(t, err)

	inner, ok := tree.Named["toolbar"].(*sash.Container)
	require.True(t, ok)
	require.Equal(t, 1, inner.Len())

	tree.Root.SetBounds(sash.NewRect(0, 0, 104, 54))
	_, err = sash.Layout(tree.Root, false)
	require.NoError(t, err)

	require.Equal(t, sash.NewRect(2, 2, 100, 50), inner.Bounds())
	require.Equal(t, sash.NewRect(0, 0, 10, 5), tree.Named["button"].Bounds())
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want string
	}{
		"missing root strategy": {
			doc:  `[root]` + "\n" + `name = "r"`,
			want: "missing strategy",
		},
		"unknown strategy": {
			doc:  "[root]\nstrategy = \"pile\"",
			want: `unknown strategy "pile"`,
		},
		"unknown axis": {
			doc:  "[root]\nstrategy = \"fill\"\naxis = \"diagonal\"",
			want: `unknown axis "diagonal"`,
		},
		"bad margins": {
			doc:  "[root]\nstrategy = \"fill\"\nmargins = [1, 2, 3]",
			want: "margins need 1, 2 or 4 values",
		},
		"duplicate names": {
			doc: `
[root]
strategy = "fill"
[[root.children]]
name = "a"
[[root.children]]
name = "a"
`,
			want: `duplicate name "a"`,
		},
		"unknown alignment": {
			doc: `
[root]
strategy = "grid"
columns = 1
[[root.children]]
halign = "middle"
`,
			want: `unknown alignment "middle"`,
		},
		"dangling attachment target": {
			doc: `
[root]
strategy = "form"
[[root.children]]
  [root.children.left]
  target = "ghost"
`,
			want: `target "ghost" is not a sibling`,
		},
		"empty attachment": {
			doc: `
[root]
strategy = "form"
[[root.children]]
  [root.children.left]
  offset = 3
`,
			want: "attachment needs percent or target",
		},
		"unknown top-control": {
			doc:  "[root]\nstrategy = \"stack\"\ntop-control = \"ghost\"",
			want: `top-control "ghost" is not a child`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorContains(t, err, tt.want)
		})
	}
}
