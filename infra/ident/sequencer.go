// Package ident generates small monotonic identifiers for domain
// entities that want human-readable numbering next to their UUIDs.
package ident

import "sync/atomic"

// Sequencer generates strictly monotonic IDs.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer starting from a given value.
// The first Next call returns start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued ID.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}
