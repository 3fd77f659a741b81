package sash

import "github.com/sashkit/sash/internal/graph"

// Form positions each child by resolving up to four edge attachments from
// its [FormHint] against either a fraction of the container's client
// rectangle or an edge of a sibling. Children whose attachments target
// siblings resolve after their targets; a cyclic attachment graph aborts
// the pass with a [CycleError].
type Form struct{}

// Compile-time check that Form implements Strategy.
var _ Strategy = (*Form)(nil)

// formHintFor returns the child's normalized FormHint. Attachments whose
// target is not a sibling are dropped and reported as a diagnostic.
func formHintFor(child Node, index int, siblings map[Node]int) FormHint {
	h, ok := child.Hint().(*FormHint)
	if !ok || h == nil {
		return FormHint{Width: Unconstrained, Height: Unconstrained}
	}
	out := *h
	if out.Width < 0 && out.Width != Unconstrained {
		diagf("form: child %d width %d ignored", index, out.Width)
		out.Width = Unconstrained
	}
	if out.Height < 0 && out.Height != Unconstrained {
		diagf("form: child %d height %d ignored", index, out.Height)
		out.Height = Unconstrained
	}
	drop := func(a *Attachment, edge string) *Attachment {
		if a == nil || a.Target == nil {
			return a
		}
		if _, ok := siblings[a.Target]; !ok {
			diagf("form: child %d %s attachment targets a non-sibling; treated as missing", index, edge)
			return nil
		}
		return a
	}
	out.Left = drop(out.Left, "left")
	out.Top = drop(out.Top, "top")
	out.Right = drop(out.Right, "right")
	out.Bottom = drop(out.Bottom, "bottom")
	return out
}

// attachTargets collects the sibling indices a hint depends on.
func attachTargets(h FormHint, siblings map[Node]int) []int {
	var deps []int
	for _, a := range []*Attachment{h.Left, h.Top, h.Right, h.Bottom} {
		if a != nil && a.Target != nil {
			deps = append(deps, siblings[a.Target])
		}
	}
	return deps
}

// resolveEdge computes the pixel position of one attachment. leading is
// true for left/top attachments; it selects the facing edge when the
// attachment uses EdgeDefault against a sibling.
func resolveEdge(a *Attachment, extent int, horizontal, leading bool, siblings map[Node]int, resolved []Rect) int {
	if a.Target == nil {
		return extent*a.Numerator/a.denominator() + a.Offset
	}
	tr := resolved[siblings[a.Target]]
	var base int
	switch a.Align {
	case EdgeStart:
		if horizontal {
			base = tr.X
		} else {
			base = tr.Y
		}
	case EdgeEnd:
		if horizontal {
			base = tr.Right()
		} else {
			base = tr.Bottom()
		}
	case EdgeCenter:
		if horizontal {
			base = tr.X + tr.Width/2
		} else {
			base = tr.Y + tr.Height/2
		}
	default:
		// The edge facing the referencing attachment: a leading (left/top)
		// attachment lands after the target, a trailing one before it.
		switch {
		case leading && horizontal:
			base = tr.Right()
		case leading:
			base = tr.Bottom()
		case horizontal:
			base = tr.X
		default:
			base = tr.Y
		}
	}
	return base + a.Offset
}

// resolveAxis computes one axis of a child's rectangle from its start/end
// attachments and preferred extent. In measure mode (zero-extent client)
// an axis whose extent depends on a percentage attachment is widened to
// the preferred extent, keeping the measured bounding box minimal yet
// enclosing every child at its natural size.
func resolveAxis(start, end *Attachment, extent, pref int, horizontal, measure bool, siblings map[Node]int, resolved []Rect) (pos, ext int) {
	switch {
	case start != nil && end != nil:
		s := resolveEdge(start, extent, horizontal, true, siblings, resolved)
		e := resolveEdge(end, extent, horizontal, false, siblings, resolved)
		ext = e - s
		if measure && (start.Target == nil || end.Target == nil) && ext < pref {
			ext = pref
		}
		pos = s
	case start != nil:
		pos = resolveEdge(start, extent, horizontal, true, siblings, resolved)
		ext = pref
	case end != nil:
		e := resolveEdge(end, extent, horizontal, false, siblings, resolved)
		pos = e - pref
		ext = pref
	default:
		pos = 0
		ext = pref
	}
	if ext < 0 {
		ext = 0
	}
	return pos, ext
}

// resolve computes client-relative rectangles for every child against the
// given client extent, in dependency order.
func (f *Form) resolve(c *Container, extent Size, measure, flush bool) ([]Rect, error) {
	n := len(c.children)
	siblings := make(map[Node]int, n)
	for i, child := range c.children {
		siblings[child] = i
	}
	hints := make([]FormHint, n)
	for i, child := range c.children {
		hints[i] = formHintFor(child, i, siblings)
	}

	order, cycle := graph.Sort(n, func(i int) []int {
		return attachTargets(hints[i], siblings)
	})
	if cycle != nil {
		err := &CycleError{Container: c, Indexes: cycle}
		for _, i := range cycle {
			err.Cycle = append(err.Cycle, c.children[i])
		}
		return nil, err
	}

	resolved := make([]Rect, n)
	for _, i := range order {
		child := c.children[i]
		h := hints[i]
		pref, err := naturalSize(child, h.Width, h.Height, flush)
		if err != nil {
			return nil, err
		}
		if Constrained(h.Width) {
			pref.Width = h.Width
		}
		if Constrained(h.Height) {
			pref.Height = h.Height
		}

		x, w := resolveAxis(h.Left, h.Right, extent.Width, pref.Width, true, measure, siblings, resolved)
		y, hgt := resolveAxis(h.Top, h.Bottom, extent.Height, pref.Height, false, measure, siblings, resolved)
		resolved[i] = NewRect(x, y, w, hgt)
	}
	return resolved, nil
}

func (f *Form) computeSize(c *Container, widthHint, heightHint int, flush bool) (Size, error) {
	rects, err := f.resolve(c, Size{}, true, flush)
	if err != nil {
		return Size{}, err
	}
	var width, height int
	for _, r := range rects {
		if r.Right() > width {
			width = r.Right()
		}
		if r.Bottom() > height {
			height = r.Bottom()
		}
	}
	return NewSize(width, height).Expand(c.margins), nil
}

func (f *Form) layout(c *Container, flush bool) error {
	client := c.ClientRect()
	rects, err := f.resolve(c, client.Size(), false, flush)
	if err != nil {
		return err
	}
	// Bounds are committed only after the whole graph resolved, so a
	// failing pass never leaves a subset of siblings placed.
	for i, child := range c.children {
		child.SetBounds(rects[i].Translate(client.X, client.Y))
	}
	return nil
}
