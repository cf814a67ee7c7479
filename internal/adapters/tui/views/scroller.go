package views

// Scroller keeps a cursor inside a fixed-height window over a list. The
// window moves by the smallest amount that keeps the cursor visible, the
// way an editor sidebar scrolls.
type Scroller struct {
	height int
	offset int
	cursor int
	total  int
}

// NewScroller creates a scroller showing height rows
func NewScroller(height int) *Scroller {
	s := &Scroller{}
	s.SetHeight(height)
	return s
}

// SetHeight changes the number of visible rows
func (s *Scroller) SetHeight(height int) {
	s.height = max(height, 1)
	s.follow()
}

// SetTotal sets the list length, pulling the cursor back into range
func (s *Scroller) SetTotal(total int) {
	s.total = max(total, 0)
	s.SetCursor(s.cursor)
}

// Cursor returns the absolute cursor index
func (s *Scroller) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor, clamped to the list
func (s *Scroller) SetCursor(pos int) {
	s.cursor = max(min(pos, s.total-1), 0)
	s.follow()
}

// Move shifts the cursor by delta rows and reports whether it moved
func (s *Scroller) Move(delta int) bool {
	before := s.cursor
	s.SetCursor(s.cursor + delta)
	return s.cursor != before
}

// PageUp moves the cursor one window up
func (s *Scroller) PageUp() bool {
	return s.Move(-s.height)
}

// PageDown moves the cursor one window down
func (s *Scroller) PageDown() bool {
	return s.Move(s.height)
}

// Window returns the half-open range of visible indices
func (s *Scroller) Window() (start, end int) {
	return s.offset, min(s.offset+s.height, s.total)
}

// Overflows reports whether the list is longer than the window
func (s *Scroller) Overflows() bool {
	return s.total > s.height
}

// Percent is how far the window has scrolled, 0 at the top and 100 at the end
func (s *Scroller) Percent() int {
	last := s.total - s.height
	if last <= 0 {
		return 100
	}
	return s.offset * 100 / last
}

func (s *Scroller) follow() {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
	// no empty rows below the last item after the list shrinks
	s.offset = max(min(s.offset, s.total-s.height), 0)
}
