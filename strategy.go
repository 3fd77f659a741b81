package sash

// Strategy computes sizes and assigns child bounds for one container.
// The set of strategies is closed: Fill, Row, Grid, Form, and Stack.
// Implementations are dispatched by the driver; a strategy never calls
// Layout on its own container.
type Strategy interface {
	// computeSize reports the container's preferred size for the given
	// hints, margins included. It must not mutate any node's bounds.
	computeSize(c *Container, widthHint, heightHint int, flush bool) (Size, error)

	// layout assigns bounds to every child from the container's current
	// client rectangle.
	layout(c *Container, flush bool) error
}

// Axis is the horizontal or vertical direction of a flow strategy's
// primary axis.
type Axis uint8

const (
	// Horizontal lays children out left to right.
	Horizontal Axis = iota
	// Vertical lays children out top to bottom.
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// main extracts the primary-axis component of a size.
func (a Axis) main(s Size) int {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// cross extracts the cross-axis component of a size.
func (a Axis) cross(s Size) int {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// size builds a Size from primary- and cross-axis extents.
func (a Axis) size(main, cross int) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// origin splits a rectangle's origin into (main, cross) coordinates.
func (a Axis) origin(r Rect) (mainPos, crossPos int) {
	if a == Horizontal {
		return r.X, r.Y
	}
	return r.Y, r.X
}

// rect builds a Rect from primary- and cross-axis positions and extents.
func (a Axis) rect(mainPos, crossPos, mainExt, crossExt int) Rect {
	if a == Horizontal {
		return NewRect(mainPos, crossPos, mainExt, crossExt)
	}
	return NewRect(crossPos, mainPos, crossExt, mainExt)
}

// hints splits a (widthHint, heightHint) pair into (main, cross) for the
// axis.
func (a Axis) hints(widthHint, heightHint int) (mainHint, crossHint int) {
	if a == Horizontal {
		return widthHint, heightHint
	}
	return heightHint, widthHint
}
