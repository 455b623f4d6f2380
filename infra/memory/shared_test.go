package memory

import "testing"

func TestSharedCountLifecycle(t *testing.T) {
	s := NewShared([]int{1, 2, 3})
	if s.Refs() != 1 {
		t.Errorf("fresh handle should have count 1, got %d", s.Refs())
	}

	c1 := s.Clone()
	c2 := s.Clone()
	if s.Refs() != 3 {
		t.Errorf("count should be 3 with three holders, got %d", s.Refs())
	}

	c1.Release()
	c2.Release()
	if s.Refs() != 1 {
		t.Errorf("count should drop back to 1, got %d", s.Refs())
	}
}

func TestSharedMutationVisibleThroughAllHolders(t *testing.T) {
	s := NewShared(&[]int{1, 2, 3})
	clone := s.Clone()

	*s.Get() = append(*s.Get(), 4)
	*clone.Get() = append(*clone.Get(), 5)

	got := *clone.Get()
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSharedDropRunsExactlyOnce(t *testing.T) {
	drops := 0
	s := NewSharedWithDrop(42, func(int) { drops++ })
	clone := s.Clone()

	s.Release()
	if drops != 0 {
		t.Error("drop must not run while a holder is live")
	}
	clone.Release()
	if drops != 1 {
		t.Errorf("drop should run exactly once, ran %d times", drops)
	}
}

func TestSharedUseAfterReleasePanics(t *testing.T) {
	s := NewShared(1)
	s.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on Get after Release, but got none")
		}
	}()
	s.Get()
}

func TestSharedDoubleReleasePanics(t *testing.T) {
	s := NewShared(1)
	clone := s.Clone()
	clone.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on second Release, but got none")
		}
	}()
	clone.Release()
}

func TestWeakUpgradeWhileAlive(t *testing.T) {
	s := NewShared("value")
	w := s.Downgrade()

	if !w.Alive() {
		t.Error("weak handle should see the value alive")
	}
	up, ok := w.Upgrade()
	if !ok {
		t.Fatal("upgrade should succeed while a strong holder exists")
	}
	if s.Refs() != 2 {
		t.Errorf("upgrade should add a strong holder, count %d", s.Refs())
	}
	up.Release()
	s.Release()
}

func TestWeakUpgradeAfterLastRelease(t *testing.T) {
	s := NewShared("value")
	w := s.Downgrade()
	s.Release()

	if w.Alive() {
		t.Error("weak handle should see the value dead")
	}
	if _, ok := w.Upgrade(); ok {
		t.Error("upgrade must fail after the last strong holder released")
	}
}

func TestWeakDoesNotExtendLifetime(t *testing.T) {
	drops := 0
	s := NewSharedWithDrop(7, func(int) { drops++ })
	_ = s.Downgrade()
	s.Release()
	if drops != 1 {
		t.Error("a weak handle must not keep the value alive")
	}
}
