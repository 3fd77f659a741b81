package sash

import "testing"

func TestRow_Layout_Wrap(t *testing.T) {
	// Three children of natural width 40 in a 100-wide container with
	// spacing 10: children 1 and 2 fit on line one (40+10+40 = 90), the
	// third wraps to line two.
	c := NewContainer(WithStrategy(&Row{Wrap: true, Pack: true, Spacing: 10}))
	a, b, d := NewFixed(40, 15), NewFixed(40, 15), NewFixed(40, 15)
	c.Add(a)
	c.Add(b)
	c.Add(d)
	c.SetBounds(NewRect(0, 0, 100, 60))

	if _, err := Layout(c, false); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	if got := a.Bounds(); got != NewRect(0, 0, 40, 15) {
		t.Errorf("first child bounds = %+v, want {0 0 40 15}", got)
	}
	if got := b.Bounds(); got != NewRect(50, 0, 40, 15) {
		t.Errorf("second child bounds = %+v, want {50 0 40 15}", got)
	}
	if got := d.Bounds(); got != NewRect(0, 25, 40, 15) {
		t.Errorf("third child bounds = %+v, want {0 25 40 15}", got)
	}
}

func TestRow_ComputeSize_WrapHeight(t *testing.T) {
	c := NewContainer(WithStrategy(&Row{Wrap: true, Pack: true, Spacing: 10}))
	for i := 0; i < 3; i++ {
		c.Add(NewFixed(40, 15))
	}

	// Unconstrained with no assigned bounds: nothing to wrap against,
	// so the children measure as a single line.
	got, err := ComputeSize(c, Unconstrained, Unconstrained, false)
	if err != nil {
		t.Fatalf("ComputeSize() error = %v", err)
	}
	if got != NewSize(140, 15) {
		t.Errorf("ComputeSize(Unconstrained) = %+v, want {140 15}", got)
	}

	// Constrained to 100 wide: two lines plus inter-line spacing.
	got, err = ComputeSize(c, 100, Unconstrained, false)
	if err != nil {
		t.Fatalf("ComputeSize() error = %v", err)
	}
	if got.Height != 40 {
		t.Errorf("ComputeSize(100).Height = %d, want 40 (two lines + spacing)", got.Height)
	}
}

func TestRow_ComputeSize_WrapAtCurrentWidth(t *testing.T) {
	// A placed 100-wide container wraps its three 40-wide children onto
	// two lines even without a width hint, so the unconstrained height
	// matches what Layout will produce.
	c := NewContainer(WithStrategy(&Row{Wrap: true, Pack: true, Spacing: 10}))
	for i := 0; i < 3; i++ {
		c.Add(NewFixed(40, 15))
	}
	c.SetBounds(NewRect(0, 0, 100, 60))

	got, err := ComputeSize(c, Unconstrained, Unconstrained, false)
	if err != nil {
		t.Fatalf("ComputeSize() error = %v", err)
	}
	if got.Height != 40 {
		t.Errorf("ComputeSize(Unconstrained).Height = %d, want 40 (two lines + spacing)", got.Height)
	}

	// Resizing the container re-measures at the new width: everything
	// fits on one line again.
	c.SetBounds(NewRect(0, 0, 200, 60))
	got, err = ComputeSize(c, Unconstrained, Unconstrained, false)
	if err != nil {
		t.Fatalf("ComputeSize() after resize error = %v", err)
	}
	if got.Height != 15 {
		t.Errorf("ComputeSize(Unconstrained).Height after resize = %d, want 15 (single line)", got.Height)
	}
}

func TestRow_ComputeSize_WrapWithMargins(t *testing.T) {
	c := NewContainer(
		WithStrategy(&Row{Wrap: true, Pack: true, Spacing: 10}),
		WithMargins(EdgeAll(5)),
	)
	for i := 0; i < 3; i++ {
		c.Add(NewFixed(40, 15))
	}

	// The wrap limit accounts for margins: 100 - 10 leaves 90, which
	// still fits two children per line.
	got, err := ComputeSize(c, 100, Unconstrained, false)
	if err != nil {
		t.Fatalf("ComputeSize() error = %v", err)
	}
	if got.Height != 50 {
		t.Errorf("ComputeSize(100).Height = %d, want 50 (two lines + spacing + margins)", got.Height)
	}
}

func TestRow_Layout_NoPack(t *testing.T) {
	// pack=false gives every child the dimensions of the largest.
	c := NewContainer(WithStrategy(&Row{Spacing: 2}))
	a, b := NewFixed(10, 8), NewFixed(30, 12)
	c.Add(a)
	c.Add(b)
	c.SetBounds(NewRect(0, 0, 200, 40))

	if _, err := Layout(c, false); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	if got := a.Bounds(); got != NewRect(0, 0, 30, 12) {
		t.Errorf("first child bounds = %+v, want {0 0 30 12}", got)
	}
	if got := b.Bounds(); got != NewRect(32, 0, 30, 12) {
		t.Errorf("second child bounds = %+v, want {32 0 30 12}", got)
	}
}

func TestRow_Layout_Hints(t *testing.T) {
	type tc struct {
		hint *RowHint
		want Rect
	}

	tests := map[string]tc{
		"preferred width override": {
			hint: &RowHint{PreferredWidth: 25, PreferredHeight: Unconstrained},
			want: NewRect(0, 0, 25, 10),
		},
		"preferred both override": {
			hint: &RowHint{PreferredWidth: 25, PreferredHeight: 7},
			want: NewRect(0, 0, 25, 7),
		},
		"nil hint uses natural": {
			hint: nil,
			want: NewRect(0, 0, 40, 10),
		},
		"negative preferred recovers to natural": {
			hint: &RowHint{PreferredWidth: -7, PreferredHeight: Unconstrained},
			want: NewRect(0, 0, 40, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer(WithStrategy(&Row{Pack: true}))
			child := NewFixed(40, 10)
			if tt.hint != nil {
				child.SetHint(tt.hint)
			}
			c.Add(child)
			c.SetBounds(NewRect(0, 0, 200, 50))

			if _, err := Layout(c, false); err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			if got := child.Bounds(); got != tt.want {
				t.Errorf("child bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRow_Layout_Exclude(t *testing.T) {
	c := NewContainer(WithStrategy(&Row{Pack: true, Spacing: 5}))
	a, b, d := NewFixed(10, 10), NewFixed(10, 10), NewFixed(10, 10)
	b.SetHint(&RowHint{PreferredWidth: Unconstrained, PreferredHeight: Unconstrained, Exclude: true})
	b.SetBounds(NewRect(9, 9, 9, 9))
	c.Add(a)
	c.Add(b)
	c.Add(d)
	c.SetBounds(NewRect(0, 0, 100, 20))

	if _, err := Layout(c, false); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	if got := d.Bounds(); got != NewRect(15, 0, 10, 10) {
		t.Errorf("third child bounds = %+v, want {15 0 10 10} (excluded child skipped)", got)
	}
	if got := b.Bounds(); got != NewRect(9, 9, 9, 9) {
		t.Errorf("excluded child bounds = %+v, want untouched {9 9 9 9}", got)
	}
}

func TestRow_Layout_CrossAxis(t *testing.T) {
	type tc struct {
		fill   bool
		center bool
		want   Rect // bounds of the shorter child
	}

	tests := map[string]tc{
		"default leading edge": {
			want: NewRect(22, 0, 10, 6),
		},
		"fill stretches to line": {
			fill: true,
			want: NewRect(22, 0, 10, 20),
		},
		"center within line": {
			center: true,
			want:   NewRect(22, 7, 10, 6),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer(WithStrategy(&Row{Pack: true, Spacing: 2, Fill: tt.fill, Center: tt.center}))
			tall := NewFixed(20, 20)
			short := NewFixed(10, 6)
			c.Add(tall)
			c.Add(short)
			c.SetBounds(NewRect(0, 0, 100, 30))

			if _, err := Layout(c, false); err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			if got := short.Bounds(); got != tt.want {
				t.Errorf("short child bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRow_Layout_Justify(t *testing.T) {
	// 100 wide, two 20-wide children, spacing 2: leftover 58 split into
	// three gaps of 20/19/19.
	c := NewContainer(WithStrategy(&Row{Pack: true, Spacing: 2, Justify: true}))
	a, b := NewFixed(20, 10), NewFixed(20, 10)
	c.Add(a)
	c.Add(b)
	c.SetBounds(NewRect(0, 0, 100, 20))

	if _, err := Layout(c, false); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	if got := a.Bounds().X; got != 20 {
		t.Errorf("first child X = %d, want 20", got)
	}
	if got := b.Bounds().X; got != 61 {
		t.Errorf("second child X = %d, want 61", got)
	}
}

func TestRow_Vertical(t *testing.T) {
	c := NewContainer(WithStrategy(&Row{Axis: Vertical, Pack: true, Spacing: 4}))
	a, b := NewFixed(10, 30), NewFixed(10, 30)
	c.Add(a)
	c.Add(b)
	c.SetBounds(NewRect(0, 0, 50, 100))

	if _, err := Layout(c, false); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	if got := a.Bounds(); got != NewRect(0, 0, 10, 30) {
		t.Errorf("first child bounds = %+v, want {0 0 10 30}", got)
	}
	if got := b.Bounds(); got != NewRect(0, 34, 10, 30) {
		t.Errorf("second child bounds = %+v, want {0 34 10 30}", got)
	}
}
