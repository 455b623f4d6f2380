package memory

import (
	"fmt"
	"sync/atomic"
)

// state is the counted cell behind every Shared and Weak handle of
// one value. The value is dropped exactly once, when the strong
// count reaches zero.
type state[T any] struct {
	strong atomic.Int64
	value  T
	dead   bool
	drop   func(T)
}

func (st *state[T]) release() {
	n := st.strong.Add(-1)
	if n > 0 {
		return
	}
	if n < 0 {
		panic("memory: strong count went negative")
	}
	st.dead = true
	if st.drop != nil {
		st.drop(st.value)
	}
	var zero T
	st.value = zero
}

// Shared is a reference-counted handle to a single mutable value.
// Cloning a handle creates a new holder of the same underlying
// storage; the storage is released when the last holder releases.
//
// Shared is safe only under single-threaded aliasing. Mutation
// happens through the value returned by Get, with no locking.
type Shared[T any] struct {
	st       *state[T]
	released bool
}

// NewShared creates the first handle to v, with a strong count of 1.
func NewShared[T any](v T) *Shared[T] {
	return NewSharedWithDrop(v, nil)
}

// NewSharedWithDrop is NewShared with a drop hook that runs exactly
// once, when the last holder releases.
func NewSharedWithDrop[T any](v T, drop func(T)) *Shared[T] {
	st := &state[T]{value: v, drop: drop}
	st.strong.Store(1)
	return &Shared[T]{st: st}
}

// Clone creates a new holder of the same underlying storage and
// increments the strong count.
func (s *Shared[T]) Clone() *Shared[T] {
	s.check()
	s.st.strong.Add(1)
	return &Shared[T]{st: s.st}
}

// Get returns the shared value. Mutating methods on the value are
// visible through every live holder.
func (s *Shared[T]) Get() T {
	s.check()
	return s.st.value
}

// Refs returns the current strong count.
func (s *Shared[T]) Refs() int {
	s.check()
	return int(s.st.strong.Load())
}

// Release drops this holder. When it is the last one, the value is
// dropped and the storage reclaimed. Each handle releases once;
// a second Release panics.
func (s *Shared[T]) Release() {
	s.check()
	s.released = true
	s.st.release()
}

// Downgrade returns a weak handle that does not keep the value alive.
func (s *Shared[T]) Downgrade() *Weak[T] {
	s.check()
	return &Weak[T]{st: s.st}
}

func (s *Shared[T]) check() {
	if s.released {
		panic(fmt.Sprintf("memory: use of released Shared[%T] handle", *new(T)))
	}
	if s.st.dead {
		panic(fmt.Sprintf("memory: use of dead Shared[%T] storage", *new(T)))
	}
}

// Weak is a non-owning handle to a Shared value. It observes the
// value's liveness but does not extend it.
type Weak[T any] struct {
	st *state[T]
}

// Upgrade returns a new strong handle while the value is alive.
// After the last strong holder released, it returns (nil, false).
func (w *Weak[T]) Upgrade() (*Shared[T], bool) {
	if w.st.dead || w.st.strong.Load() == 0 {
		return nil, false
	}
	w.st.strong.Add(1)
	return &Shared[T]{st: w.st}, true
}

// Alive reports whether any strong holder still exists.
func (w *Weak[T]) Alive() bool {
	return !w.st.dead && w.st.strong.Load() > 0
}
