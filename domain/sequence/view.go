package sequence

import (
	"fmt"
	"iter"
)

// View is a non-owning, read-only window over a contiguous range of
// a Sequence. Multiple views over the same sequence may coexist.
//
// A view is only valid while the underlying sequence is not
// appended to. That ordering is a precondition, not a runtime
// check; use Guarded when the check is wanted.
type View[T any] struct {
	items []T
}

// Len returns the number of elements in the window.
func (v View[T]) Len() int {
	return len(v.items)
}

// At returns the element at index i within the window.
func (v View[T]) At(i int) T {
	return v.items[i]
}

// Items returns a copy of the windowed elements.
func (v View[T]) Items() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Values returns a restartable iterator over the window.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.items {
			if !yield(x) {
				return
			}
		}
	}
}

// String formats the view like a plain slice.
func (v View[T]) String() string {
	return fmt.Sprint(v.items)
}
