package stream

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Filter yields the elements of src for which keep returns true.
func Filter[T any](src iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields fn applied to each element of src.
func Map[T, U any](src iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Reduce folds src into a single value, starting from init.
func Reduce[T, U any](src iter.Seq[T], init U, fn func(U, T) U) U {
	acc := init
	for v := range src {
		acc = fn(acc, v)
	}
	return acc
}

// Sum reduces an integer stream by addition. The result is
// undefined when the running total overflows the integer width.
func Sum[T constraints.Integer](src iter.Seq[T]) T {
	return Reduce(src, 0, func(acc, v T) T { return acc + v })
}
