// Package memory provides the low-level ownership primitives for
// the library. It includes reference-counted shared handles with
// interior mutability, weak and unique handles, borrow tracking,
// and scoped resource release.
//
// The memory package is dependency-free and forms the foundation
// for the sequence and pattern packages. All handles assume
// single-threaded aliasing; counts stay observable so tests can
// assert the bookkeeping directly.
package memory
