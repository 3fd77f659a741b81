package sash

// Stack shows one child at a time: the designated top control receives
// the full client rectangle and every other child is assigned zero-size
// bounds. Visibility toggling is the caller's concern; the strategy only
// assigns geometry.
type Stack struct {
	// TopControl is the child given the full client rectangle. It is
	// settable independent of child order. When nil (or not a child),
	// every child receives zero-size bounds.
	TopControl Node
}

// Compile-time check that Stack implements Strategy.
var _ Strategy = (*Stack)(nil)

func (s *Stack) computeSize(c *Container, widthHint, heightHint int, flush bool) (Size, error) {
	var size Size
	for _, child := range c.children {
		natural, err := naturalSize(child, Unconstrained, Unconstrained, flush)
		if err != nil {
			return Size{}, err
		}
		size = size.Max(natural)
	}
	return size.Expand(c.margins), nil
}

func (s *Stack) layout(c *Container, flush bool) error {
	client := c.ClientRect()
	for _, child := range c.children {
		if child == s.TopControl {
			child.SetBounds(client)
		} else {
			child.SetBounds(NewRect(client.X, client.Y, 0, 0))
		}
	}
	return nil
}
