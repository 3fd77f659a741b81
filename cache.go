package sash

// sizeCache memoizes the most recent ComputeSize result for a container,
// keyed by the width/height hints it was computed with. The entry is
// written only by the driver and invalidated on structural change or an
// explicit flush.
type sizeCache struct {
	valid bool
	wHint int
	hHint int
	size  Size
}

// get returns the cached size if it is valid for the given hints.
func (c *sizeCache) get(wHint, hHint int) (Size, bool) {
	if !c.valid || c.wHint != wHint || c.hHint != hHint {
		return Size{}, false
	}
	return c.size, true
}

// put records a freshly computed size for the given hints.
func (c *sizeCache) put(wHint, hHint int, size Size) {
	c.valid = true
	c.wHint = wHint
	c.hHint = hHint
	c.size = size
}

// invalidate discards the entry. Called on structural mutation and flush.
func (c *sizeCache) invalidate() {
	c.valid = false
}
