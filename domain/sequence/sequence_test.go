package sequence

import (
	"slices"
	"testing"
)

func TestOfCopiesLiterals(t *testing.T) {
	src := []int{1, 2, 3}
	s := Of(src...)
	src[0] = 99
	if s.At(0) != 1 {
		t.Error("sequence should own a copy of its literals")
	}
}

func TestAppendGrows(t *testing.T) {
	s := New[int]()
	s.Append(1)
	s.Append(2)
	if s.Len() != 2 || s.At(0) != 1 || s.At(1) != 2 {
		t.Errorf("expected [1 2], got %v", s.Items())
	}
}

func TestItemsReturnsACopy(t *testing.T) {
	s := Of(1, 2, 3)
	items := s.Items()
	items[0] = 99
	if s.At(0) != 1 {
		t.Error("mutating the Items copy must not touch the sequence")
	}
}

func TestValuesIsRestartable(t *testing.T) {
	s := Of(1, 2, 3)
	first := slices.Collect(s.Values())
	second := slices.Collect(s.Values())
	if !slices.Equal(first, second) || !slices.Equal(first, []int{1, 2, 3}) {
		t.Errorf("two runs over Values should agree: %v vs %v", first, second)
	}
}

func TestWindowContents(t *testing.T) {
	s := Of(1, 2, 3, 4, 5)
	front := s.Window(0, 2)
	back := s.Window(2, 4)

	if !slices.Equal(front.Items(), []int{1, 2}) {
		t.Errorf("front window should be [1 2], got %v", front.Items())
	}
	if !slices.Equal(back.Items(), []int{3, 4}) {
		t.Errorf("back window should be [3 4], got %v", back.Items())
	}
}

func TestWindowOutOfRangePanics(t *testing.T) {
	s := Of(1, 2, 3)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on out-of-range window, but got none")
		}
	}()
	s.Window(1, 4)
}

func TestGuardedAppendWhileBorrowedPanics(t *testing.T) {
	g := Guard(Of(1, 2, 3, 4, 5))
	v := g.Window(0, 2)
	defer v.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on Append with a live view, but got none")
		}
	}()
	g.Append(6)
}

func TestGuardedAppendAfterRelease(t *testing.T) {
	g := Guard(Of(1, 2, 3, 4, 5))
	front := g.Window(0, 2)
	back := g.Window(2, 4)
	front.Release()
	back.Release()

	g.Append(6)
	got := g.Unwrap().Items()
	if !slices.Equal(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("expected [1 2 3 4 5 6], got %v", got)
	}
}

func TestGuardedDoubleReleasePanics(t *testing.T) {
	g := Guard(Of(1, 2, 3))
	v := g.Window(0, 1)
	v.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on double view release, but got none")
		}
	}()
	v.Release()
}

func TestGuardedBorrowCount(t *testing.T) {
	g := Guard(Of(1, 2, 3, 4))
	a := g.Window(0, 2)
	b := g.Window(2, 4)
	if g.Borrows() != 2 {
		t.Errorf("expected 2 outstanding borrows, got %d", g.Borrows())
	}
	a.Release()
	b.Release()
	if g.Borrows() != 0 {
		t.Errorf("expected 0 outstanding borrows, got %d", g.Borrows())
	}
}
