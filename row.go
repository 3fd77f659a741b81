package sash

// Row flows children along its primary axis, optionally wrapping onto new
// lines when a child would exceed the remaining extent. Children may carry
// a [RowHint] to override their preferred size or opt out of layout.
type Row struct {
	// Axis is the primary flow axis.
	Axis Axis
	// Wrap starts a new line when the next child would exceed the
	// remaining extent on the current line.
	Wrap bool
	// Pack sizes each child to its preferred size. When false all
	// children receive identical dimensions, the maximum over the set.
	Pack bool
	// Justify distributes each line's leftover primary-axis space evenly
	// into the gaps around its children.
	Justify bool
	// Fill stretches every child to the cross-axis extent of its line.
	Fill bool
	// Center centers each child within its line's cross extent instead of
	// placing it at the leading edge.
	Center bool
	// Spacing is the number of pixels between children and between lines.
	Spacing int
}

// Compile-time check that Row implements Strategy.
var _ Strategy = (*Row)(nil)

// NewRow returns a Row with the conventional defaults: horizontal,
// wrapping, packed, with 3 pixels of spacing.
func NewRow() *Row {
	return &Row{Wrap: true, Pack: true, Spacing: 3}
}

// rowHintFor returns the child's RowHint, or the default when the child
// carries none (or a mismatched variant). Negative preferred values other
// than Unconstrained are normalized away.
func rowHintFor(child Node, index int) RowHint {
	h, ok := child.Hint().(*RowHint)
	if !ok || h == nil {
		return RowHint{PreferredWidth: Unconstrained, PreferredHeight: Unconstrained}
	}
	out := *h
	if out.PreferredWidth < 0 && out.PreferredWidth != Unconstrained {
		diagf("row: child %d preferred width %d clamped to natural", index, out.PreferredWidth)
		out.PreferredWidth = Unconstrained
	}
	if out.PreferredHeight < 0 && out.PreferredHeight != Unconstrained {
		diagf("row: child %d preferred height %d clamped to natural", index, out.PreferredHeight)
		out.PreferredHeight = Unconstrained
	}
	return out
}

// rowItem is one laid-out child with its resolved size.
type rowItem struct {
	node Node
	size Size
}

// items measures the included children. With Pack unset every item is
// grown to the common maximum in both dimensions.
func (r *Row) items(c *Container, flush bool) ([]rowItem, error) {
	var out []rowItem
	var uniform Size
	for i, child := range c.children {
		hint := rowHintFor(child, i)
		if hint.Exclude {
			continue
		}
		size, err := naturalSize(child, hint.PreferredWidth, hint.PreferredHeight, flush)
		if err != nil {
			return nil, err
		}
		if Constrained(hint.PreferredWidth) {
			size.Width = hint.PreferredWidth
		}
		if Constrained(hint.PreferredHeight) {
			size.Height = hint.PreferredHeight
		}
		uniform = uniform.Max(size)
		out = append(out, rowItem{node: child, size: size})
	}
	if !r.Pack {
		for i := range out {
			out[i].size = uniform
		}
	}
	return out, nil
}

// wrapLines splits items into lines for the given primary-axis limit.
// A non-positive limit with wrapping disabled, or Unconstrained, yields a
// single line.
func (r *Row) wrapLines(items []rowItem, limit int) [][]rowItem {
	if !r.Wrap || !Constrained(limit) {
		if len(items) == 0 {
			return nil
		}
		return [][]rowItem{items}
	}
	var lines [][]rowItem
	var line []rowItem
	used := 0
	for _, it := range items {
		main := r.Axis.main(it.size)
		need := main
		if len(line) > 0 {
			need += r.Spacing
		}
		if len(line) > 0 && used+need > limit {
			lines = append(lines, line)
			line = nil
			used = 0
			need = main
		}
		line = append(line, it)
		used += need
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func (r *Row) computeSize(c *Container, widthHint, heightHint int, flush bool) (Size, error) {
	items, err := r.items(c, flush)
	if err != nil {
		return Size{}, err
	}
	mainHint, _ := r.Axis.hints(widthHint, heightHint)
	limit := mainHint
	if Constrained(limit) {
		m := c.margins
		if r.Axis == Horizontal {
			limit -= m.Horizontal()
		} else {
			limit -= m.Vertical()
		}
	} else if r.Wrap {
		// No main-axis hint: wrap against the current client extent, so
		// an already-placed container reports the height it will actually
		// lay out at. Unplaced containers still measure as a single line.
		if ext := r.Axis.main(c.ClientRect().Size()); ext > 0 {
			limit = ext
		}
	}

	var mainMax, crossSum int
	lines := r.wrapLines(items, limit)
	for li, line := range lines {
		var lineMain, lineCross int
		for i, it := range line {
			if i > 0 {
				lineMain += r.Spacing
			}
			lineMain += r.Axis.main(it.size)
			if cr := r.Axis.cross(it.size); cr > lineCross {
				lineCross = cr
			}
		}
		if lineMain > mainMax {
			mainMax = lineMain
		}
		if li > 0 {
			crossSum += r.Spacing
		}
		crossSum += lineCross
	}
	return r.Axis.size(mainMax, crossSum).Expand(c.margins), nil
}

func (r *Row) layout(c *Container, flush bool) error {
	items, err := r.items(c, flush)
	if err != nil {
		return err
	}
	client := c.ClientRect()
	limit := r.Axis.main(client.Size())
	mainStart, crossStart := r.Axis.origin(client)

	crossPos := crossStart
	for _, line := range r.wrapLines(items, limit) {
		lineMain := 0
		lineCross := 0
		for i, it := range line {
			if i > 0 {
				lineMain += r.Spacing
			}
			lineMain += r.Axis.main(it.size)
			if cr := r.Axis.cross(it.size); cr > lineCross {
				lineCross = cr
			}
		}

		// Justified lines absorb leftover primary space into the gaps
		// around children (one gap before each child plus a trailing gap).
		pad, padRem := 0, 0
		if r.Justify && limit > lineMain {
			leftover := limit - lineMain
			pad = leftover / (len(line) + 1)
			padRem = leftover % (len(line) + 1)
		}

		mainPos := mainStart
		for i, it := range line {
			if i > 0 {
				mainPos += r.Spacing
			}
			mainPos += pad
			if i < padRem {
				mainPos++
			}
			crossExt := r.Axis.cross(it.size)
			itemCross := crossPos
			if r.Fill {
				crossExt = lineCross
			} else if r.Center {
				itemCross += (lineCross - crossExt) / 2
			}
			it.node.SetBounds(r.Axis.rect(mainPos, itemCross, r.Axis.main(it.size), crossExt))
			mainPos += r.Axis.main(it.size)
		}
		crossPos += lineCross + r.Spacing
	}
	return nil
}
