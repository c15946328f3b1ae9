// Package par runs the elements of a sum's active slice in parallel. It is
// the fork-join counterpart of package seq: workers are positional, one per
// case, and only the active case's worker ever runs.
//
// Key constructs:
// - Each<K>: fan the active slice out over an errgroup, bounded by limit
// - Collect<K>: parallel map preserving input order
// - Drain<K>: process and then empty the active slice in place
//
// The first worker error cancels the group context and is returned; thread
// safety of the element values themselves is the caller's concern.
package par
