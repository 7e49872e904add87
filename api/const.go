package api

import "errors"

// ErrorOutofMemory memory exhausted, the kernel refused to extend the
// heap. A request that no free chunk can satisfy returns a nil
// allocation without this error.
var ErrorOutofMemory = errors.New("outofmemory")

// ErrorBadPointer pointer passed to the heap does not belong to it.
var ErrorBadPointer = errors.New("badpointer")

// Maxrequestsize hard cap on a single allocation request.
const Maxrequestsize = int64(100000000)
