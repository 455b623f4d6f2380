package memory

// Scope holds resources that must be released in reverse order of
// acquisition. Close releases them LIFO, each exactly once, which
// mirrors deterministic destruction of stack-owned values.
type Scope struct {
	stack  []scopedResource
	closed bool
}

type scopedResource struct {
	name    string
	release func()
}

// NewScope returns an empty, open scope.
func NewScope() *Scope {
	return &Scope{}
}

// Acquire registers a resource and its release hook.
func (s *Scope) Acquire(name string, release func()) {
	if s.closed {
		panic("memory: Acquire on closed Scope")
	}
	s.stack = append(s.stack, scopedResource{name: name, release: release})
}

// Len returns the number of resources still held.
func (s *Scope) Len() int {
	return len(s.stack)
}

// Close releases every held resource in reverse acquisition order
// and returns their names in the order they were released.
// A second Close is a no-op.
func (s *Scope) Close() []string {
	if s.closed {
		return nil
	}
	s.closed = true

	released := make([]string, 0, len(s.stack))
	for i := len(s.stack) - 1; i >= 0; i-- {
		r := s.stack[i]
		if r.release != nil {
			r.release()
		}
		released = append(released, r.name)
	}
	s.stack = nil
	return released
}
