package sash

// Node is the contract every positionable element satisfies. Leaf nodes
// are implemented by the widget layer (text metrics, image dimensions);
// the engine treats NaturalSize as an opaque, side-effect-free query.
// A Node retains no layout state between calls; all memoization lives in
// the container that owns it.
type Node interface {
	// NaturalSize reports the node's preferred size. Each hint is either a
	// concrete pixel value constraining that dimension or Unconstrained,
	// which asks for the natural extent. Mixed calls are legal and common
	// ("what height do you need at exactly 300 wide").
	NaturalSize(widthHint, heightHint int) Size

	// Bounds returns the node's parent-relative bounds.
	Bounds() Rect

	// SetBounds assigns the node's parent-relative bounds. Only the layout
	// phase mutates bounds; the widget layer reflects them into any native
	// representation.
	SetBounds(Rect)

	// Hint returns the layout hint attached to this node, or nil.
	Hint() Hint

	// SetHint attaches a layout hint interpreted by the parent's strategy.
	SetHint(Hint)
}

// Compile-time check that Container implements Node.
var _ Node = (*Container)(nil)

// Container is a node that owns an ordered sequence of children, margin
// configuration, and at most one active layout strategy. Child order is
// significant: it is iteration and placement order.
type Container struct {
	children []Node
	bounds   Rect
	hint     Hint
	margins  Edges
	strategy Strategy

	// clientFunc, when set, supplies the client rectangle instead of the
	// default bounds-minus-margins (e.g. to reserve scrollbar space).
	clientFunc func(*Container) Rect

	cache      sizeCache
	inProgress bool
}

// Option configures a Container at construction time.
type Option func(*Container)

// WithStrategy sets the container's layout strategy.
func WithStrategy(s Strategy) Option {
	return func(c *Container) { c.strategy = s }
}

// WithMargins sets the container's margins.
func WithMargins(e Edges) Option {
	return func(c *Container) { c.margins = e }
}

// WithChildren appends the given children in order.
func WithChildren(nodes ...Node) Option {
	return func(c *Container) { c.children = append(c.children, nodes...) }
}

// WithClientRectFunc overrides how the container derives its client
// rectangle from its bounds, for callers that reserve decoration space.
func WithClientRectFunc(fn func(*Container) Rect) Option {
	return func(c *Container) { c.clientFunc = fn }
}

// NewContainer creates a Container with the given options.
// A container without a strategy is inert: Layout reports false.
func NewContainer(opts ...Option) *Container {
	c := &Container{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends a child. Invalidates the size cache.
func (c *Container) Add(n Node) {
	c.children = append(c.children, n)
	c.cache.invalidate()
}

// Insert places a child at index i, shifting later children.
// Out-of-range indexes append. Invalidates the size cache.
func (c *Container) Insert(i int, n Node) {
	if i < 0 || i > len(c.children) {
		c.Add(n)
		return
	}
	c.children = append(c.children[:i], append([]Node{n}, c.children[i:]...)...)
	c.cache.invalidate()
}

// Remove removes the first occurrence of n, comparing by identity.
// Attachments targeting n elsewhere become dangling and are treated as
// missing during resolution. Invalidates the size cache.
func (c *Container) Remove(n Node) bool {
	for i, child := range c.children {
		if child == n {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.cache.invalidate()
			return true
		}
	}
	return false
}

// Children returns the container's children in placement order.
// The returned slice is a copy; mutating it does not affect the container.
func (c *Container) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

// Strategy returns the active layout strategy, or nil.
func (c *Container) Strategy() Strategy {
	return c.strategy
}

// SetStrategy replaces the active layout strategy.
// Invalidates the size cache.
func (c *Container) SetStrategy(s Strategy) {
	c.strategy = s
	c.cache.invalidate()
}

// Margins returns the container's margins.
func (c *Container) Margins() Edges {
	return c.margins
}

// SetMargins replaces the container's margins.
// Invalidates the size cache.
func (c *Container) SetMargins(e Edges) {
	c.margins = e
	c.cache.invalidate()
}

// Invalidate discards the container's memoized size. Call after mutating
// a child's hint or natural-size inputs outside the container's own
// accessors.
func (c *Container) Invalidate() {
	c.cache.invalidate()
}

// ClientRect returns the rectangle available to children: the container's
// bounds, at a local origin, minus margins and any reserved decoration.
func (c *Container) ClientRect() Rect {
	if c.clientFunc != nil {
		return c.clientFunc(c)
	}
	return NewRect(0, 0, c.bounds.Width, c.bounds.Height).Inset(c.margins)
}

// NaturalSize implements Node by delegating to ComputeSize with the cache
// permitted. A container whose strategy fails to resolve (for example a
// cyclic attachment graph) reports a zero size here; the typed error
// surfaces from ComputeSize or Layout on that container.
func (c *Container) NaturalSize(widthHint, heightHint int) Size {
	size, err := ComputeSize(c, widthHint, heightHint, false)
	if err != nil {
		return Size{}
	}
	return size
}

// Bounds returns the container's parent-relative bounds.
func (c *Container) Bounds() Rect {
	return c.bounds
}

// SetBounds assigns the container's parent-relative bounds. A change in
// extent invalidates the size cache: wrapping strategies measure against
// the current client extent when no hint constrains them.
func (c *Container) SetBounds(r Rect) {
	if r.Width != c.bounds.Width || r.Height != c.bounds.Height {
		c.cache.invalidate()
	}
	c.bounds = r
}

// Hint returns the hint this container carries as a child of its parent.
func (c *Container) Hint() Hint {
	return c.hint
}

// SetHint attaches a hint interpreted by the parent's strategy.
func (c *Container) SetHint(h Hint) {
	c.hint = h
}
