// Package patterns exposes the library's demonstrations as pure,
// print-free operations: exclusive ownership, borrowed views,
// reference-counted shared ownership, and a lazy filter/map/reduce
// transform, plus a closure-capture counter.
//
// Every operation is total over its inputs and idempotent across
// calls; the presentation binaries only format what these return.
package patterns
