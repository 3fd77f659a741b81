// Package config loads layout trees from TOML descriptions.
//
// A description has a single [root] table describing a container, with
// nested [[...children]] arrays for its children. A child with a
// "strategy" key is itself a container; a child without one is a fixed
// leaf sized by "width" and "height". Hint keys on a child are
// interpreted against the parent's strategy, matching how hints attach
// in the engine.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sashkit/sash"
)

// File is the top-level TOML document.
type File struct {
	Root Spec `toml:"root"`
}

// Spec describes one node: a container when Strategy is set, a fixed
// leaf otherwise. Hint fields apply to the node in its parent's layout.
type Spec struct {
	Name string `toml:"name"`

	// Leaf size.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Container fields.
	Strategy   string `toml:"strategy"`
	Axis       string `toml:"axis"`
	Margins    []int  `toml:"margins"`
	Spacing    *int   `toml:"spacing"`
	Wrap       *bool  `toml:"wrap"`
	Pack       *bool  `toml:"pack"`
	Justify    bool   `toml:"justify"`
	Fill       bool   `toml:"fill"`
	Center     bool   `toml:"center"`
	Columns    int    `toml:"columns"`
	EqualWidth bool   `toml:"equal-width"`
	HSpacing   *int   `toml:"hspacing"`
	VSpacing   *int   `toml:"vspacing"`
	TopControl string `toml:"top-control"`
	Children   []Spec `toml:"children"`

	// Hint fields, interpreted against the parent's strategy.
	ColSpan    int     `toml:"colspan"`
	RowSpan    int     `toml:"rowspan"`
	HAlign     string  `toml:"halign"`
	VAlign     string  `toml:"valign"`
	GrabH      bool    `toml:"grab-h"`
	GrabV      bool    `toml:"grab-v"`
	WidthHint  *int    `toml:"width-hint"`
	HeightHint *int    `toml:"height-hint"`
	MinWidth   int     `toml:"min-width"`
	MinHeight  int     `toml:"min-height"`
	HIndent    int     `toml:"indent-h"`
	VIndent    int     `toml:"indent-v"`
	Exclude    bool    `toml:"exclude"`
	Left       *Attach `toml:"left"`
	Top        *Attach `toml:"top"`
	Right      *Attach `toml:"right"`
	Bottom     *Attach `toml:"bottom"`
}

// Attach describes one form attachment: either a percentage of the
// client extent or a named sibling edge, plus a pixel offset.
type Attach struct {
	Percent *int   `toml:"percent"`
	Target  string `toml:"target"`
	Edge    string `toml:"edge"`
	Offset  int    `toml:"offset"`
}

// Tree is a built layout tree with its named nodes.
type Tree struct {
	Root  *sash.Container
	Named map[string]sash.Node
}

// Load reads and builds the layout description at path.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse builds the layout tree described by a TOML document.
func Parse(data []byte) (*Tree, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Root.Strategy == "" {
		return nil, fmt.Errorf("root: missing strategy")
	}
	t := &Tree{Named: make(map[string]sash.Node)}
	root, err := t.buildContainer(&f.Root, "root")
	if err != nil {
		return nil, err
	}
	t.Root = root
	return t, nil
}

// buildContainer builds a container spec and its subtree. path names the
// spec's position in the document for error messages.
func (t *Tree) buildContainer(s *Spec, path string) (*sash.Container, error) {
	margins, err := parseMargins(s.Margins)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	strategy, err := s.strategy()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c := sash.NewContainer(sash.WithStrategy(strategy), sash.WithMargins(margins))
	names := make(map[string]sash.Node, len(s.Children))
	built := make([]sash.Node, 0, len(s.Children))
	for i := range s.Children {
		child := &s.Children[i]
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		if child.Name != "" {
			childPath = fmt.Sprintf("%s.%s", path, child.Name)
		}

		var node sash.Node
		if child.Strategy != "" {
			node, err = t.buildContainer(child, childPath)
			if err != nil {
				return nil, err
			}
		} else {
			node = sash.NewFixed(child.Width, child.Height)
		}
		c.Add(node)
		built = append(built, node)

		if child.Name != "" {
			if _, dup := t.Named[child.Name]; dup {
				return nil, fmt.Errorf("%s: duplicate name %q", path, child.Name)
			}
			names[child.Name] = node
			t.Named[child.Name] = node
		}
	}

	// Hints resolve against sibling names, so they attach after every
	// child of this container exists.
	for i := range s.Children {
		child := &s.Children[i]
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		hint, err := child.hint(s.Strategy, names)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", childPath, err)
		}
		if hint != nil {
			built[i].SetHint(hint)
		}
	}

	if stack, ok := strategy.(*sash.Stack); ok && s.TopControl != "" {
		top, ok := names[s.TopControl]
		if !ok {
			return nil, fmt.Errorf("%s: top-control %q is not a child", path, s.TopControl)
		}
		stack.TopControl = top
	}
	return c, nil
}

// strategy builds the container's strategy from its spec fields.
func (s *Spec) strategy() (sash.Strategy, error) {
	axis, err := parseAxis(s.Axis)
	if err != nil {
		return nil, err
	}
	switch s.Strategy {
	case "fill":
		f := &sash.Fill{Axis: axis}
		if s.Spacing != nil {
			f.Spacing = *s.Spacing
		}
		return f, nil
	case "row":
		r := sash.NewRow()
		r.Axis = axis
		r.Justify = s.Justify
		r.Fill = s.Fill
		r.Center = s.Center
		if s.Wrap != nil {
			r.Wrap = *s.Wrap
		}
		if s.Pack != nil {
			r.Pack = *s.Pack
		}
		if s.Spacing != nil {
			r.Spacing = *s.Spacing
		}
		return r, nil
	case "grid":
		g := sash.NewGrid(s.Columns)
		g.EqualWidth = s.EqualWidth
		if s.HSpacing != nil {
			g.HSpacing = *s.HSpacing
		}
		if s.VSpacing != nil {
			g.VSpacing = *s.VSpacing
		}
		if s.Spacing != nil {
			g.HSpacing = *s.Spacing
			g.VSpacing = *s.Spacing
		}
		return g, nil
	case "form":
		return &sash.Form{}, nil
	case "stack":
		return &sash.Stack{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", s.Strategy)
	}
}

// hint builds the child's hint for the parent strategy, or nil when the
// child sets no hint field relevant to it.
func (s *Spec) hint(parent string, siblings map[string]sash.Node) (sash.Hint, error) {
	switch parent {
	case "row":
		if s.WidthHint == nil && s.HeightHint == nil && !s.Exclude {
			return nil, nil
		}
		h := sash.NewRowHint()
		if s.WidthHint != nil {
			h.PreferredWidth = *s.WidthHint
		}
		if s.HeightHint != nil {
			h.PreferredHeight = *s.HeightHint
		}
		h.Exclude = s.Exclude
		return h, nil
	case "grid":
		h := sash.NewGridHint()
		if s.ColSpan > 0 {
			h.ColSpan = s.ColSpan
		}
		if s.RowSpan > 0 {
			h.RowSpan = s.RowSpan
		}
		if s.HAlign != "" {
			a, err := parseAlign(s.HAlign)
			if err != nil {
				return nil, err
			}
			h.HAlign = a
		}
		if s.VAlign != "" {
			a, err := parseAlign(s.VAlign)
			if err != nil {
				return nil, err
			}
			h.VAlign = a
		}
		h.GrabH = s.GrabH
		h.GrabV = s.GrabV
		if s.WidthHint != nil {
			h.WidthHint = *s.WidthHint
		}
		if s.HeightHint != nil {
			h.HeightHint = *s.HeightHint
		}
		h.MinWidth = s.MinWidth
		h.MinHeight = s.MinHeight
		h.HIndent = s.HIndent
		h.VIndent = s.VIndent
		h.Exclude = s.Exclude
		return h, nil
	case "form":
		h := sash.NewFormHint()
		if s.WidthHint != nil {
			h.Width = *s.WidthHint
		}
		if s.HeightHint != nil {
			h.Height = *s.HeightHint
		}
		var err error
		if h.Left, err = s.Left.attachment(siblings); err != nil {
			return nil, fmt.Errorf("left: %w", err)
		}
		if h.Top, err = s.Top.attachment(siblings); err != nil {
			return nil, fmt.Errorf("top: %w", err)
		}
		if h.Right, err = s.Right.attachment(siblings); err != nil {
			return nil, fmt.Errorf("right: %w", err)
		}
		if h.Bottom, err = s.Bottom.attachment(siblings); err != nil {
			return nil, fmt.Errorf("bottom: %w", err)
		}
		return h, nil
	default:
		// Fill and stack children attach no hint.
		return nil, nil
	}
}

// attachment builds a sash.Attachment from its spec, resolving the
// target among the named siblings.
func (a *Attach) attachment(siblings map[string]sash.Node) (*sash.Attachment, error) {
	if a == nil {
		return nil, nil
	}
	if a.Target != "" {
		target, ok := siblings[a.Target]
		if !ok {
			return nil, fmt.Errorf("target %q is not a sibling", a.Target)
		}
		edge, err := parseEdge(a.Edge)
		if err != nil {
			return nil, err
		}
		return sash.AttachToEdge(target, edge, a.Offset), nil
	}
	if a.Percent == nil {
		return nil, fmt.Errorf("attachment needs percent or target")
	}
	return sash.Percent(*a.Percent, a.Offset), nil
}

func parseAxis(s string) (sash.Axis, error) {
	switch s {
	case "", "horizontal":
		return sash.Horizontal, nil
	case "vertical":
		return sash.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

func parseAlign(s string) (sash.Align, error) {
	switch s {
	case "start":
		return sash.AlignStart, nil
	case "center":
		return sash.AlignCenter, nil
	case "end":
		return sash.AlignEnd, nil
	case "fill":
		return sash.AlignFill, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
}

func parseEdge(s string) (sash.EdgeAlign, error) {
	switch s {
	case "", "default":
		return sash.EdgeDefault, nil
	case "start":
		return sash.EdgeStart, nil
	case "end":
		return sash.EdgeEnd, nil
	case "center":
		return sash.EdgeCenter, nil
	default:
		return 0, fmt.Errorf("unknown edge %q", s)
	}
}

// parseMargins accepts one value (all sides), two (vertical, horizontal)
// or four (top, right, bottom, left).
func parseMargins(m []int) (sash.Edges, error) {
	switch len(m) {
	case 0:
		return sash.Edges{}, nil
	case 1:
		return sash.EdgeAll(m[0]), nil
	case 2:
		return sash.EdgeSymmetric(m[0], m[1]), nil
	case 4:
		return sash.EdgeTRBL(m[0], m[1], m[2], m[3]), nil
	default:
		return sash.Edges{}, fmt.Errorf("margins need 1, 2 or 4 values, got %d", len(m))
	}
}
