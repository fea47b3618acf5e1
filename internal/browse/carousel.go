package browse

// SwipeThreshold is the drag distance needed before a swipe changes cards
const SwipeThreshold = 50

// Navigation keys understood by the carousel and the pager
const (
	KeyLeft  = "left"
	KeyRight = "right"
)

// Carousel shows one card at a time. Navigation wraps at both ends.
// A carousel over zero cards ignores every move.
type Carousel struct {
	length int
	index  int
}

// NewCarousel creates a carousel over length cards starting at the first
func NewCarousel(length int) *Carousel {
	return &Carousel{length: max(length, 0)}
}

// Len returns the number of cards
func (c *Carousel) Len() int {
	return c.length
}

// Index returns the position of the visible card
func (c *Carousel) Index() int {
	return c.index
}

// Next moves to the following card, wrapping to the first
func (c *Carousel) Next() {
	if c.length == 0 {
		return
	}
	c.index = (c.index + 1) % c.length
}

// Previous moves to the preceding card, wrapping to the last
func (c *Carousel) Previous() {
	if c.length == 0 {
		return
	}
	c.index = (c.index - 1 + c.length) % c.length
}

// JumpTo shows the card at index. Out of range indexes are ignored.
func (c *Carousel) JumpTo(index int) bool {
	if index < 0 || index >= c.length {
		return false
	}
	c.index = index
	return true
}

// HandleKey applies an arrow key and reports whether it was consumed
func (c *Carousel) HandleKey(key string) bool {
	switch key {
	case KeyLeft:
		c.Previous()
	case KeyRight:
		c.Next()
	default:
		return false
	}
	return c.length > 0
}

// Swipe applies a horizontal drag from start to end. Dragging left past the
// threshold shows the next card, dragging right the previous one.
func (c *Carousel) Swipe(start, end float64) bool {
	distance := start - end
	switch {
	case distance > SwipeThreshold:
		c.Next()
	case distance < -SwipeThreshold:
		c.Previous()
	default:
		return false
	}
	return c.length > 0
}

// Reset changes the card count and returns to the first card
func (c *Carousel) Reset(length int) {
	c.length = max(length, 0)
	c.index = 0
}
