// Package merge combines two independently produced Outcome values
// into one, accumulating all failures instead of stopping at the first.
//
// Key operations:
// - NonEmpty: merge outcomes whose failure side is a nonempty.List
// - General: merge outcomes whose failure side is any slice type
// - AllNonEmpty/All: fold the binary merge over many same-typed outcomes
//
// When both sides fail, the merged failure holds the left errors
// followed by the right errors, element order preserved. The combine
// callback runs at most once, and only when both sides succeed.
package merge
