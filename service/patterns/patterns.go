package patterns

import (
	"memlab/domain/sequence"
	"memlab/domain/stream"
	"memlab/infra/memory"
)

// Ownership builds a sequence by appending two values to an empty
// one and hands it to the caller. The caller is the sole owner; no
// other live reference exists when it returns.
func Ownership() *sequence.Sequence[int] {
	vec := sequence.New[int]()
	vec.Append(1)
	vec.Append(2)
	return vec
}

// Borrowing builds [1 2 3 4 5], observes it through two
// non-overlapping read-only windows, releases both, and only then
// appends 6. The returned front and back slices are the windows'
// contents as read while the borrows were live; the sequence is the
// final six-element result.
//
// The views-then-append ordering is the rule being demonstrated:
// appending while either window was unreleased would panic.
func Borrowing() (front, back []int, data *sequence.Sequence[int]) {
	owner := sequence.Guard(sequence.Of(1, 2, 3, 4, 5))

	frontView := owner.Window(0, 2)
	backView := owner.Window(2, 4)
	front = frontView.Items()
	back = backView.Items()
	frontView.Release()
	backView.Release()

	owner.Append(6)
	return front, back, owner.Unwrap()
}

// SharedOwnership creates a reference-counted sequence [1 2 3] with
// three simultaneous holders, appends 4 through the original and 5
// through the first clone, and reads the result through the second
// clone. It returns the shared contents and the strong count at the
// point all three holders are live, which is always 3.
func SharedOwnership() (values []int, refs int) {
	shared := memory.NewShared(sequence.Of(1, 2, 3))
	clone1 := shared.Clone()
	clone2 := shared.Clone()

	shared.Get().Append(4)
	clone1.Get().Append(5)

	values = clone2.Get().Items()
	refs = shared.Refs()

	clone2.Release()
	clone1.Release()
	shared.Release()
	return values, refs
}

// SharedOwnershipReleased runs the same walk as SharedOwnership and
// additionally observes the count after both clones released:
// it returns (3, 1).
func SharedOwnershipReleased() (peak, after int) {
	shared := memory.NewShared(sequence.Of(1, 2, 3))
	clone1 := shared.Clone()
	clone2 := shared.Clone()
	peak = shared.Refs()

	clone2.Release()
	clone1.Release()
	after = shared.Refs()

	shared.Release()
	return peak, after
}

// ZeroCostTransform filters a sequence to its even values, squares
// them, and sums the squares, as a composed lazy pipeline. The input
// is never mutated. The result is undefined when an intermediate
// square overflows int.
func ZeroCostTransform(numbers *sequence.Sequence[int]) int {
	evens := stream.Filter(numbers.Values(), func(n int) bool { return n%2 == 0 })
	squares := stream.Map(evens, func(n int) int { return n * n })
	return stream.Sum(squares)
}
