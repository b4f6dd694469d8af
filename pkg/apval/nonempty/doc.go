// Package nonempty provides List[T], an ordered sequence that contains
// at least one element by construction. It backs failure payloads whose
// non-emptiness must survive concatenation without runtime checks.
//
// Key operations:
// - One/Of/FromSlice: construct a List
// - Head/Rest/Len/Slice: read access
// - Concat/Append: grow into a fresh List without mutating operands
package nonempty
