package sash

// Fixed is a leaf node with a constant natural size. It stands in for a
// widget-layer control in applications and tests that have no toolkit
// behind them.
type Fixed struct {
	size   Size
	bounds Rect
	hint   Hint
}

// Compile-time check that Fixed implements Node.
var _ Node = (*Fixed)(nil)

// NewFixed creates a leaf node whose natural size is width x height.
func NewFixed(width, height int) *Fixed {
	return &Fixed{size: NewSize(width, height)}
}

// NaturalSize reports the fixed size; a concrete hint overrides the
// corresponding dimension.
func (f *Fixed) NaturalSize(widthHint, heightHint int) Size {
	size := f.size
	if Constrained(widthHint) {
		size.Width = widthHint
	}
	if Constrained(heightHint) {
		size.Height = heightHint
	}
	return size
}

// Bounds returns the node's parent-relative bounds.
func (f *Fixed) Bounds() Rect { return f.bounds }

// SetBounds assigns the node's parent-relative bounds.
func (f *Fixed) SetBounds(r Rect) { f.bounds = r }

// Hint returns the attached layout hint, or nil.
func (f *Fixed) Hint() Hint { return f.hint }

// SetHint attaches a layout hint interpreted by the parent's strategy.
func (f *Fixed) SetHint(h Hint) { f.hint = h }

// FuncNode is a leaf node whose natural size comes from a callback,
// typically wrapping an external measurement such as text metrics.
type FuncNode struct {
	fn     func(widthHint, heightHint int) Size
	bounds Rect
	hint   Hint
}

// Compile-time check that FuncNode implements Node.
var _ Node = (*FuncNode)(nil)

// NewFuncNode creates a leaf node measured by fn. The callback must be
// side-effect-free.
func NewFuncNode(fn func(widthHint, heightHint int) Size) *FuncNode {
	return &FuncNode{fn: fn}
}

// NaturalSize reports the callback's size for the given hints.
func (n *FuncNode) NaturalSize(widthHint, heightHint int) Size {
	if n.fn == nil {
		return Size{}
	}
	return n.fn(widthHint, heightHint)
}

// Bounds returns the node's parent-relative bounds.
func (n *FuncNode) Bounds() Rect { return n.bounds }

// SetBounds assigns the node's parent-relative bounds.
func (n *FuncNode) SetBounds(r Rect) { n.bounds = r }

// Hint returns the attached layout hint, or nil.
func (n *FuncNode) Hint() Hint { return n.hint }

// SetHint attaches a layout hint interpreted by the parent's strategy.
func (n *FuncNode) SetHint(h Hint) { n.hint = h }
