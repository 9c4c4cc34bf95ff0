package flow

// cursor is the shared index state for sequential traversal over an
// ordered set of learning items. The index is always in [0, length)
// while length > 0.
type cursor struct {
	index  int
	length int
}

// advance moves to the next item, wrapping from last to first. No-op
// when there are fewer than two items.
func (c *cursor) advance() {
	if c.length <= 1 {
		return
	}
	c.index = (c.index + 1) % c.length
}

// retreat moves to the previous item with symmetric wraparound.
func (c *cursor) retreat() {
	if c.length <= 1 {
		return
	}
	c.index = (c.index - 1 + c.length) % c.length
}

// jumpTo sets the index directly. Out-of-range targets are ignored and
// reported false.
func (c *cursor) jumpTo(i int) bool {
	if i < 0 || i >= c.length {
		return false
	}
	c.index = i
	return true
}
