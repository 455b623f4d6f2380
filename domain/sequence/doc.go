// Package sequence implements the owned, growable collection at the
// center of the library, together with borrowed read-only views.
//
// A Sequence has exactly one owner, who may append. A View is a
// non-owning window over a contiguous range; any number of views may
// observe a sequence at once, but the owner must not append while a
// view is still in use. The plain types document that rule; the
// Guarded wrapper enforces it at runtime via borrow tracking.
package sequence
