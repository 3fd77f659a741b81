package sash

// ComputeSize reports the container's preferred size given optional
// width/height constraints. Each hint is either a concrete pixel value or
// Unconstrained. The call is read-only with respect to geometry: no
// node's bounds are mutated.
//
// With flush=false a memoized result keyed by (widthHint, heightHint) may
// be returned if no structural mutation occurred since it was computed.
// flush=true forces recomputation and overwrites the cache.
//
// A concrete hint overrides the corresponding dimension of the result.
// A container without a strategy reports its margins alone.
func ComputeSize(c *Container, widthHint, heightHint int, flush bool) (Size, error) {
	if c.inProgress {
		return Size{}, &ReentrantError{Op: "ComputeSize"}
	}
	if flush {
		c.cache.invalidate()
	}
	if size, ok := c.cache.get(widthHint, heightHint); ok {
		return size, nil
	}

	c.inProgress = true
	defer func() { c.inProgress = false }()

	var size Size
	if c.strategy == nil {
		size = Size{}.Expand(c.margins)
	} else {
		var err error
		size, err = c.strategy.computeSize(c, widthHint, heightHint, flush)
		if err != nil {
			return Size{}, err
		}
	}
	if Constrained(widthHint) {
		size.Width = widthHint
	}
	if Constrained(heightHint) {
		size.Height = heightHint
	}
	size = size.Clamp()
	c.cache.put(widthHint, heightHint, size)
	return size, nil
}

// Layout assigns bounds to every child of the container from its current
// client rectangle, then recurses into children that are themselves
// containers with the same flush flag. Bounds of the container itself are
// never touched; callers position the container.
//
// Layout reports false only when the container has no active strategy
// (a no-op). A strategy failure (attachment cycle) aborts this
// container's pass and surfaces as a typed error; the subtree below an
// already-placed child container is still laid out independently by its
// own pass.
func Layout(c *Container, flush bool) (bool, error) {
	if c.strategy == nil {
		return false, nil
	}
	if c.inProgress {
		return false, &ReentrantError{Op: "Layout"}
	}
	if flush {
		c.cache.invalidate()
	}

	c.inProgress = true
	err := c.strategy.layout(c, flush)
	c.inProgress = false
	if err != nil {
		return false, err
	}

	for _, child := range c.children {
		if cc, ok := child.(*Container); ok {
			if _, err := Layout(cc, flush); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

// naturalSize queries a child's preferred size, recursing into the driver
// for child containers so the flush flag propagates.
func naturalSize(n Node, widthHint, heightHint int, flush bool) (Size, error) {
	if cc, ok := n.(*Container); ok {
		return ComputeSize(cc, widthHint, heightHint, flush)
	}
	return n.NaturalSize(widthHint, heightHint).Clamp(), nil
}
