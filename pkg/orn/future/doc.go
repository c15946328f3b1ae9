// Package future awaits sums of pending values. A sum of receive-only
// channels is awaitable as a whole: Await<K> blocks on whichever channel the
// active case holds and returns the received value tagged with that case.
//
// Cancellation and timeouts are the context's business; the adapter only
// forwards them and adds no suspension point of its own.
package future
