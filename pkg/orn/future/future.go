package future

import "errors"

// ErrClosed reports that the awaited channel closed before a value arrived.
var ErrClosed = errors.New("future: channel closed before a value was received")
