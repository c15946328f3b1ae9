// Package seq adapts sums of iterable contents to Go's iterator protocol.
// A sum of sequences iterates as a sequence of sums: each produced element is
// tagged with the case it came from.
//
// Key constructs:
// - Of<K>: lift an Or<K> of iter.Seq values into one iter.Seq
// - Slice<K>/Backward<K>: forward and reverse iteration over the active slice
// - Len<K>: length of the active slice (the sized counterpart)
// - Extend<K>: append items to the active slice, whichever case holds it
//
// The adapter adds no buffering or reordering of its own; ordering and
// termination come entirely from the underlying sequence.
package seq
