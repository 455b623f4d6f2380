package sequence

import (
	"fmt"
	"iter"
)

// Sequence is an ordered, growable, owned collection.
// The owner appends; everyone else observes through Views or the
// copies handed out by Items.
type Sequence[T any] struct {
	items []T
}

// New creates an empty sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// Of creates a sequence holding the given values.
func Of[T any](vs ...T) *Sequence[T] {
	s := &Sequence[T]{items: make([]T, len(vs))}
	copy(s.items, vs)
	return s
}

// Append adds values at the end. It must not be called while a View
// over this sequence is still in use; see Window.
func (s *Sequence[T]) Append(vs ...T) {
	s.items = append(s.items, vs...)
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i. Panics when out of range.
func (s *Sequence[T]) At(i int) T {
	return s.items[i]
}

// Items returns a copy of the elements. The copy is the caller's.
func (s *Sequence[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Values returns a restartable iterator over the elements.
// Every call ranges over the sequence's current contents from the
// start, so a pipeline built on it can be run more than once.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Window returns a read-only view of the half-open range [lo, hi).
// Panics when the bounds are out of range. The view borrows the
// sequence's storage: the owner must not Append until the view is
// no longer in use.
func (s *Sequence[T]) Window(lo, hi int) View[T] {
	if lo < 0 || hi < lo || hi > len(s.items) {
		panic(fmt.Sprintf("sequence: window [%d,%d) out of range for length %d", lo, hi, len(s.items)))
	}
	return View[T]{items: s.items[lo:hi:hi]}
}

// String formats the sequence like a plain slice.
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.items)
}
