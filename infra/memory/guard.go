package memory

import (
	"fmt"
	"sync/atomic"
)

// BorrowGuard tracks outstanding read borrows of one resource.
// Readers mark themselves with EnterRead/ExitRead; a writer calls
// CheckExclusive before mutating and panics while any reader is
// still inside its read section.
type BorrowGuard struct {
	readers atomic.Int64
}

// EnterRead marks the start of a read borrow.
func (g *BorrowGuard) EnterRead() {
	g.readers.Add(1)
}

// ExitRead marks the end of a read borrow.
func (g *BorrowGuard) ExitRead() {
	if g.readers.Add(-1) < 0 {
		panic("memory: ExitRead without matching EnterRead")
	}
}

// Outstanding returns the number of live read borrows.
func (g *BorrowGuard) Outstanding() int {
	return int(g.readers.Load())
}

// CheckExclusive asserts that no read borrow is live. It is the
// write-side gate: mutation is only legal when it passes.
func (g *BorrowGuard) CheckExclusive() {
	if n := g.readers.Load(); n != 0 {
		panic(fmt.Sprintf("memory: mutation attempted with %d read borrows outstanding", n))
	}
}
