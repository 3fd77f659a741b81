package sash

// Fill divides the container's client area into equal shares along its
// primary axis, one per child. Children attach no hint. The zero value is
// a horizontal fill with no spacing.
type Fill struct {
	// Axis is the primary axis children are divided along.
	Axis Axis
	// Spacing is the number of pixels between adjacent children.
	Spacing int
}

// Compile-time check that Fill implements Strategy.
var _ Strategy = (*Fill)(nil)

func (f *Fill) computeSize(c *Container, widthHint, heightHint int, flush bool) (Size, error) {
	var mainSum, crossMax int
	for _, child := range c.children {
		size, err := naturalSize(child, Unconstrained, Unconstrained, flush)
		if err != nil {
			return Size{}, err
		}
		mainSum += f.Axis.main(size)
		if cr := f.Axis.cross(size); cr > crossMax {
			crossMax = cr
		}
	}
	if n := len(c.children); n > 1 {
		mainSum += f.Spacing * (n - 1)
	}
	return f.Axis.size(mainSum, crossMax).Expand(c.margins), nil
}

func (f *Fill) layout(c *Container, flush bool) error {
	n := len(c.children)
	if n == 0 {
		return nil
	}
	client := c.ClientRect()
	avail := f.Axis.main(client.Size()) - f.Spacing*(n-1)
	if avail < 0 {
		avail = 0
	}
	share := avail / n
	remainder := avail % n

	// The first `remainder` children get one extra pixel so the assigned
	// shares sum exactly to the available extent.
	pos, crossPos := f.Axis.origin(client)
	crossExt := f.Axis.cross(client.Size())
	for i, child := range c.children {
		ext := share
		if i < remainder {
			ext++
		}
		child.SetBounds(f.Axis.rect(pos, crossPos, ext, crossExt))
		pos += ext + f.Spacing
	}
	return nil
}
