package views

import "testing"

func TestScroller_FollowsCursor(t *testing.T) {
	s := NewScroller(3)
	s.SetTotal(7)

	for range 3 {
		s.Move(1)
	}
	if s.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", s.Cursor())
	}
	if start, end := s.Window(); start != 1 || end != 4 {
		t.Errorf("window = [%d,%d), want [1,4)", start, end)
	}

	s.Move(-1)
	if start, _ := s.Window(); start != 1 {
		t.Errorf("moving inside the window must not scroll, start = %d", start)
	}
	s.Move(-2)
	if start, _ := s.Window(); start != 0 {
		t.Errorf("moving above the window should scroll to the cursor, start = %d", start)
	}
}

func TestScroller_Clamps(t *testing.T) {
	s := NewScroller(0)
	s.SetTotal(2)

	if s.Move(-1) {
		t.Error("moving up at the top should report no move")
	}
	s.SetCursor(10)
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want clamp to 1", s.Cursor())
	}
	if s.Move(1) {
		t.Error("moving down at the bottom should report no move")
	}

	s.SetTotal(1)
	if s.Cursor() != 0 {
		t.Errorf("shrinking the list should pull the cursor in, got %d", s.Cursor())
	}

	s.SetTotal(0)
	if start, end := s.Window(); start != 0 || end != 0 {
		t.Errorf("empty list window = [%d,%d)", start, end)
	}
}

func TestScroller_Pages(t *testing.T) {
	s := NewScroller(5)
	s.SetTotal(12)

	if !s.PageDown() || s.Cursor() != 5 {
		t.Errorf("page down cursor = %d, want 5", s.Cursor())
	}
	s.PageDown()
	s.PageDown()
	if s.Cursor() != 11 {
		t.Errorf("cursor = %d, want last row", s.Cursor())
	}
	if start, end := s.Window(); start != 7 || end != 12 {
		t.Errorf("window = [%d,%d), want [7,12)", start, end)
	}
	if s.Percent() != 100 {
		t.Errorf("percent = %d, want 100", s.Percent())
	}

	s.SetHeight(20)
	if s.Overflows() {
		t.Error("a window taller than the list does not overflow")
	}
	if start, _ := s.Window(); start != 0 {
		t.Errorf("growing the window should show the top, start = %d", start)
	}

	s.SetHeight(5)
	if !s.PageUp() || s.Cursor() != 6 {
		t.Errorf("page up cursor = %d, want 6", s.Cursor())
	}
}
