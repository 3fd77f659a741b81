package sash

// Grid arranges children in a logical grid built from the child list in
// order, honoring column and row spans. Column and row extents are the
// maximum requirement of their single-span occupants, raised as needed by
// spanning children; leftover client space is distributed to columns and
// rows marked as grabbing by a [GridHint].
type Grid struct {
	// Columns is the number of grid columns. Values below 1 clamp to 1.
	Columns int
	// EqualWidth forces every column minimum to the largest minimum
	// before distribution.
	EqualWidth bool
	// HSpacing and VSpacing are the pixels between adjacent columns and
	// rows.
	HSpacing int
	VSpacing int
}

// Compile-time check that Grid implements Strategy.
var _ Strategy = (*Grid)(nil)

// NewGrid returns a Grid with the given column count and conventional
// 5-pixel spacing.
func NewGrid(columns int) *Grid {
	return &Grid{Columns: columns, HSpacing: 5, VSpacing: 5}
}

// columns returns the clamped column count.
func (g *Grid) columns() int {
	if g.Columns < 1 {
		return 1
	}
	return g.Columns
}

// gridHintFor returns the child's normalized GridHint: defaults when the
// child carries none or a mismatched variant, with spans clamped to legal
// values and negative sizes and indents zeroed.
func gridHintFor(child Node, index, columns int) GridHint {
	h, ok := child.Hint().(*GridHint)
	if !ok || h == nil {
		return *NewGridHint()
	}
	out := *h
	if out.ColSpan < 1 {
		diagf("grid: child %d column span %d clamped to 1", index, out.ColSpan)
		out.ColSpan = 1
	}
	if out.ColSpan > columns {
		out.ColSpan = columns
	}
	if out.RowSpan < 1 {
		diagf("grid: child %d row span %d clamped to 1", index, out.RowSpan)
		out.RowSpan = 1
	}
	if out.MinWidth < 0 {
		diagf("grid: child %d min width %d clamped to 0", index, out.MinWidth)
		out.MinWidth = 0
	}
	if out.MinHeight < 0 {
		diagf("grid: child %d min height %d clamped to 0", index, out.MinHeight)
		out.MinHeight = 0
	}
	if out.HIndent < 0 {
		diagf("grid: child %d horizontal indent %d clamped to 0", index, out.HIndent)
		out.HIndent = 0
	}
	if out.VIndent < 0 {
		diagf("grid: child %d vertical indent %d clamped to 0", index, out.VIndent)
		out.VIndent = 0
	}
	if out.WidthHint < 0 && out.WidthHint != Unconstrained {
		diagf("grid: child %d width hint %d ignored", index, out.WidthHint)
		out.WidthHint = Unconstrained
	}
	if out.HeightHint < 0 && out.HeightHint != Unconstrained {
		diagf("grid: child %d height hint %d ignored", index, out.HeightHint)
		out.HeightHint = Unconstrained
	}
	return out
}

// gridItem is one placed child with its normalized hint, measured size,
// and origin cell.
type gridItem struct {
	node     Node
	hint     GridHint
	size     Size
	row, col int
}

// gridPlan is the resolved grid for one pass: placed items plus the
// per-column and per-row minimum extents.
type gridPlan struct {
	items   []gridItem
	rows    int
	colMins []int
	rowMins []int
}

// plan builds the cell table and computes column/row minimums (the first
// two steps shared by both phases).
func (g *Grid) plan(c *Container, flush bool) (*gridPlan, error) {
	cols := g.columns()

	// Step 1: walk children in order, placing each at the first cursor
	// position with enough free consecutive columns for its span. Cells
	// occupied by earlier row-spanning children are skipped.
	var items []gridItem
	occupied := map[[2]int]bool{}
	row, col := 0, 0
	for i, child := range c.children {
		hint := gridHintFor(child, i, cols)
		if hint.Exclude {
			continue
		}
		for {
			if col+hint.ColSpan > cols {
				row++
				col = 0
				continue
			}
			free := true
			for x := col; x < col+hint.ColSpan; x++ {
				if occupied[[2]int{row, x}] {
					col = x + 1
					free = false
					break
				}
			}
			if free {
				break
			}
		}
		for r := row; r < row+hint.RowSpan; r++ {
			for x := col; x < col+hint.ColSpan; x++ {
				occupied[[2]int{r, x}] = true
			}
		}

		size, err := naturalSize(child, hint.WidthHint, hint.HeightHint, flush)
		if err != nil {
			return nil, err
		}
		items = append(items, gridItem{node: child, hint: hint, size: size, row: row, col: col})
		col += hint.ColSpan
	}

	rows := 0
	for _, it := range items {
		if bottom := it.row + it.hint.RowSpan; bottom > rows {
			rows = bottom
		}
	}

	p := &gridPlan{items: items, rows: rows}

	// Step 2: single-span minimums first, then spanning children raise
	// the spanned tracks equally, earlier tracks absorbing the remainder.
	p.colMins = g.trackMins(items, cols, g.HSpacing, true)
	if g.EqualWidth {
		maxMin := 0
		for _, m := range p.colMins {
			if m > maxMin {
				maxMin = m
			}
		}
		for i := range p.colMins {
			p.colMins[i] = maxMin
		}
	}
	p.rowMins = g.trackMins(items, rows, g.VSpacing, false)
	return p, nil
}

// requirement returns the item's minimum extent on one axis:
// max(natural, hint, min) plus the indent on that axis.
func requirement(it gridItem, horizontal bool) int {
	if horizontal {
		req := it.size.Width
		if Constrained(it.hint.WidthHint) && it.hint.WidthHint > req {
			req = it.hint.WidthHint
		}
		if it.hint.MinWidth > req {
			req = it.hint.MinWidth
		}
		return req + it.hint.HIndent
	}
	req := it.size.Height
	if Constrained(it.hint.HeightHint) && it.hint.HeightHint > req {
		req = it.hint.HeightHint
	}
	if it.hint.MinHeight > req {
		req = it.hint.MinHeight
	}
	return req + it.hint.VIndent
}

// trackMins computes the minimum extent of each column (horizontal=true)
// or row.
func (g *Grid) trackMins(items []gridItem, count, spacing int, horizontal bool) []int {
	mins := make([]int, count)
	span := func(it gridItem) (start, n int) {
		if horizontal {
			return it.col, it.hint.ColSpan
		}
		return it.row, it.hint.RowSpan
	}

	for _, it := range items {
		start, n := span(it)
		if n != 1 {
			continue
		}
		if req := requirement(it, horizontal); req > mins[start] {
			mins[start] = req
		}
	}
	for _, it := range items {
		start, n := span(it)
		if n == 1 {
			continue
		}
		current := spacing * (n - 1)
		for t := start; t < start+n; t++ {
			current += mins[t]
		}
		req := requirement(it, horizontal)
		if current >= req {
			continue
		}
		shortfall := req - current
		per := shortfall / n
		rem := shortfall % n
		for i := 0; i < n; i++ {
			mins[start+i] += per
			if i < rem {
				mins[start+i]++
			}
		}
	}
	return mins
}

// distribute hands leftover space to grabbing tracks, proportionally to
// their minimums; grabbing tracks whose minimums sum to zero share
// equally. Integer remainders go to the earliest grabbing tracks so the
// total is exact. Without grabbers the leftover stays unused.
func distribute(mins []int, avail, spacing int, grabs []bool) []int {
	out := make([]int, len(mins))
	copy(out, mins)
	if len(out) == 0 {
		return out
	}

	total := spacing * (len(out) - 1)
	grabSum, nGrab := 0, 0
	for i, m := range out {
		total += m
		if grabs[i] {
			grabSum += m
			nGrab++
		}
	}
	leftover := avail - total
	if leftover <= 0 || nGrab == 0 {
		return out
	}

	if grabSum == 0 {
		share := leftover / nGrab
		rem := leftover % nGrab
		seen := 0
		for i := range out {
			if !grabs[i] {
				continue
			}
			out[i] += share
			if seen < rem {
				out[i]++
			}
			seen++
		}
		return out
	}

	given := 0
	for i := range out {
		if !grabs[i] {
			continue
		}
		extra := leftover * mins[i] / grabSum
		out[i] += extra
		given += extra
	}
	for rem := leftover - given; rem > 0; {
		for i := range out {
			if rem == 0 {
				break
			}
			if grabs[i] {
				out[i]++
				rem--
			}
		}
	}
	return out
}

// grabFlags marks every track spanned by at least one grabbing child.
func grabFlags(items []gridItem, count int, horizontal bool) []bool {
	grabs := make([]bool, count)
	for _, it := range items {
		grab, start, n := it.hint.GrabV, it.row, it.hint.RowSpan
		if horizontal {
			grab, start, n = it.hint.GrabH, it.col, it.hint.ColSpan
		}
		if !grab {
			continue
		}
		for t := start; t < start+n; t++ {
			grabs[t] = true
		}
	}
	return grabs
}

func (g *Grid) computeSize(c *Container, widthHint, heightHint int, flush bool) (Size, error) {
	p, err := g.plan(c, flush)
	if err != nil {
		return Size{}, err
	}
	if len(p.items) == 0 {
		return Size{}.Expand(c.margins), nil
	}
	width := g.HSpacing * (len(p.colMins) - 1)
	for _, m := range p.colMins {
		width += m
	}
	height := 0
	if p.rows > 0 {
		height = g.VSpacing * (p.rows - 1)
		for _, m := range p.rowMins {
			height += m
		}
	}
	return NewSize(width, height).Expand(c.margins), nil
}

func (g *Grid) layout(c *Container, flush bool) error {
	p, err := g.plan(c, flush)
	if err != nil {
		return err
	}
	if len(p.items) == 0 {
		return nil
	}
	client := c.ClientRect()

	// Step 3: distribution against the actual client extent.
	colWidths := distribute(p.colMins, client.Width, g.HSpacing, grabFlags(p.items, len(p.colMins), true))
	rowHeights := distribute(p.rowMins, client.Height, g.VSpacing, grabFlags(p.items, len(p.rowMins), false))

	colX := make([]int, len(colWidths))
	x := client.X
	for i, w := range colWidths {
		colX[i] = x
		x += w + g.HSpacing
	}
	rowY := make([]int, len(rowHeights))
	y := client.Y
	for i, h := range rowHeights {
		rowY[i] = y
		y += h + g.VSpacing
	}

	// Step 4: place each child within its spanned cell rectangle.
	for _, it := range p.items {
		cellW := g.HSpacing * (it.hint.ColSpan - 1)
		for t := it.col; t < it.col+it.hint.ColSpan; t++ {
			cellW += colWidths[t]
		}
		cellH := g.VSpacing * (it.hint.RowSpan - 1)
		for t := it.row; t < it.row+it.hint.RowSpan; t++ {
			cellH += rowHeights[t]
		}
		cell := NewRect(colX[it.col], rowY[it.row], cellW, cellH)
		cell = cell.Inset(Edges{Left: it.hint.HIndent, Top: it.hint.VIndent})

		w := alignedExtent(cell.Width, it.size.Width, it.hint.WidthHint, it.hint.HAlign)
		h := alignedExtent(cell.Height, it.size.Height, it.hint.HeightHint, it.hint.VAlign)
		bx := alignedPos(cell.X, cell.Width, w, it.hint.HAlign)
		by := alignedPos(cell.Y, cell.Height, h, it.hint.VAlign)
		it.node.SetBounds(NewRect(bx, by, w, h))
	}
	return nil
}

// alignedExtent resolves a child's extent within its cell: Fill stretches
// to the cell, otherwise the fixed hint (or natural size) capped by the
// cell.
func alignedExtent(cell, natural, hint int, align Align) int {
	if align == AlignFill {
		return cell
	}
	ext := natural
	if Constrained(hint) {
		ext = hint
	}
	if ext > cell {
		ext = cell
	}
	if ext < 0 {
		ext = 0
	}
	return ext
}

// alignedPos resolves a child's position within its cell for its extent.
func alignedPos(cellPos, cellExt, ext int, align Align) int {
	switch align {
	case AlignCenter:
		return cellPos + (cellExt-ext)/2
	case AlignEnd:
		return cellPos + cellExt - ext
	default:
		return cellPos
	}
}
