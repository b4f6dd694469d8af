// Package flow lifts the merge operators over channels for concurrent
// producers. Merging and NonEmptyMerging pair two outcome streams
// element by element; ToChanMany and FromChanMany feed and drain them.
//
// Each pairwise merge is the same pure operator from package merge;
// flow adds only transport and cancellation plumbing.
package flow
