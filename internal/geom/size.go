package geom

// Unconstrained is the sentinel hint value meaning "no constraint on this
// dimension; report the natural size". It is distinct from zero: a zero
// hint is a real (degenerate) constraint.
const Unconstrained = -1

// Size represents a width/height pair. Either component may be
// [Unconstrained] when used as a sizing hint.
type Size struct {
	Width, Height int
}

// NewSize creates a Size with the given dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Constrained reports whether v is a concrete pixel value rather than the
// Unconstrained sentinel.
func Constrained(v int) bool {
	return v != Unconstrained
}

// Clamp returns the size with negative components raised to zero.
// Intermediate layout math may go negative; committed sizes never do.
func (s Size) Clamp() Size {
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}

// Max returns the component-wise maximum of s and other.
func (s Size) Max(other Size) Size {
	if other.Width > s.Width {
		s.Width = other.Width
	}
	if other.Height > s.Height {
		s.Height = other.Height
	}
	return s
}

// Expand returns the size grown by the given edge insets.
func (s Size) Expand(e Edges) Size {
	return Size{Width: s.Width + e.Horizontal(), Height: s.Height + e.Vertical()}
}
