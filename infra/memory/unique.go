package memory

// Unique is an exclusively owned handle. At most one live Unique
// refers to a value; Move transfers ownership and empties the
// source, so a moved-from handle can no longer be used.
type Unique[T any] struct {
	value T
	live  bool
}

// NewUnique takes exclusive ownership of v.
func NewUnique[T any](v T) *Unique[T] {
	return &Unique[T]{value: v, live: true}
}

// Get returns the owned value. Panics on a moved-from or released handle.
func (u *Unique[T]) Get() T {
	if !u.live {
		panic("memory: use of moved-from Unique handle")
	}
	return u.value
}

// Move transfers ownership to a fresh handle and empties u.
func (u *Unique[T]) Move() *Unique[T] {
	v := u.Get()
	var zero T
	u.value = zero
	u.live = false
	return &Unique[T]{value: v, live: true}
}

// Release drops the owned value. The handle is empty afterwards.
func (u *Unique[T]) Release() {
	if !u.live {
		panic("memory: release of moved-from Unique handle")
	}
	var zero T
	u.value = zero
	u.live = false
}

// Live reports whether the handle still owns its value.
func (u *Unique[T]) Live() bool {
	return u.live
}
