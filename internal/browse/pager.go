package browse

// PageSize is the number of cards shown per page
const PageSize = 3

// Slot is one position of a page. Invisible slots pad an incomplete last
// page and carry no card.
type Slot struct {
	Index   int
	Visible bool
}

// Pager shows cards PageSize at a time. Pages wrap at both ends.
type Pager struct {
	length int
	page   int
}

// NewPager creates a pager over length cards starting at the first page
func NewPager(length int) *Pager {
	return &Pager{length: max(length, 0)}
}

// Len returns the number of cards
func (p *Pager) Len() int {
	return p.length
}

// Page returns the zero-based current page
func (p *Pager) Page() int {
	return p.page
}

// TotalPages returns ceil(len / PageSize)
func (p *Pager) TotalPages() int {
	return (p.length + PageSize - 1) / PageSize
}

// ControlsEnabled reports whether the previous/next controls are active
func (p *Pager) ControlsEnabled() bool {
	return p.length > PageSize
}

// ShowDots reports whether the page indicator is shown
func (p *Pager) ShowDots() bool {
	return p.TotalPages() > 1
}

// Next moves to the following page, wrapping to the first
func (p *Pager) Next() {
	if !p.ControlsEnabled() {
		return
	}
	p.page = (p.page + 1) % p.TotalPages()
}

// Previous moves to the preceding page, wrapping to the last
func (p *Pager) Previous() {
	if !p.ControlsEnabled() {
		return
	}
	total := p.TotalPages()
	p.page = (p.page - 1 + total) % total
}

// JumpTo shows the given page. Out of range pages are ignored.
func (p *Pager) JumpTo(page int) bool {
	if page < 0 || page >= p.TotalPages() {
		return false
	}
	p.page = page
	return true
}

// HandleKey applies an arrow key and reports whether it was consumed
func (p *Pager) HandleKey(key string) bool {
	switch key {
	case KeyLeft:
		p.Previous()
	case KeyRight:
		p.Next()
	default:
		return false
	}
	return p.ControlsEnabled()
}

// Slots returns exactly PageSize slots for the current page
func (p *Pager) Slots() []Slot {
	slots := make([]Slot, PageSize)
	start := p.page * PageSize
	for i := range slots {
		idx := start + i
		slots[i] = Slot{Index: idx, Visible: idx < p.length}
	}
	return slots
}

// Range returns the 1-based first and last card numbers on the current page
// and the total card count, as in "Showing 4 - 6 of 7".
func (p *Pager) Range() (first, last, total int) {
	if p.length == 0 {
		return 0, 0, 0
	}
	start := p.page * PageSize
	return start + 1, min(start+PageSize, p.length), p.length
}

// Reset changes the card count and returns to the first page
func (p *Pager) Reset(length int) {
	p.length = max(length, 0)
	p.page = 0
}
