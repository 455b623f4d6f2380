package sequence

import "memlab/infra/memory"

// Guarded wraps a Sequence with runtime borrow tracking. Window
// registers a read borrow that stays outstanding until the returned
// view is released; Append panics while any borrow is live.
//
// It trades the documented-only discipline of the plain types for a
// hard failure at the exact point of misuse.
type Guarded[T any] struct {
	seq   *Sequence[T]
	guard memory.BorrowGuard
}

// Guard wraps an owned sequence. The caller must stop using the
// plain sequence directly.
func Guard[T any](s *Sequence[T]) *Guarded[T] {
	return &Guarded[T]{seq: s}
}

// Window returns a tracked read-only view of [lo, hi). The borrow
// stays outstanding until Release is called on the view.
func (g *Guarded[T]) Window(lo, hi int) *GuardedView[T] {
	v := g.seq.Window(lo, hi)
	g.guard.EnterRead()
	return &GuardedView[T]{View: v, guard: &g.guard}
}

// Append adds values at the end. Panics while any view from Window
// has not been released.
func (g *Guarded[T]) Append(vs ...T) {
	g.guard.CheckExclusive()
	g.seq.Append(vs...)
}

// Borrows returns the number of unreleased views.
func (g *Guarded[T]) Borrows() int {
	return g.guard.Outstanding()
}

// Unwrap returns the underlying sequence, handing ownership back to
// the caller. Panics while a borrow is outstanding.
func (g *Guarded[T]) Unwrap() *Sequence[T] {
	g.guard.CheckExclusive()
	return g.seq
}

// GuardedView is a View whose lifetime is tracked by the Guarded
// owner it came from.
type GuardedView[T any] struct {
	View[T]
	guard    *memory.BorrowGuard
	released bool
}

// Release ends the borrow. The view must not be used afterwards.
// A second Release panics.
func (v *GuardedView[T]) Release() {
	if v.released {
		panic("sequence: view released twice")
	}
	v.released = true
	v.guard.ExitRead()
}
