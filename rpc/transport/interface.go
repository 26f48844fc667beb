package transport

import (
	"context"
)

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IRPCTransport is the interface the RPC call plumbing uses to talk to a
// server. Implementations are bound to one destination; the call plumbing
// never learns how payloads actually travel.
type IRPCTransport interface {
	// GetNextID returns a fresh call identifier. Identifiers are unique and
	// monotonically increasing per underlying transport (not globally), so
	// concurrent calls through handles sharing one transport never collide.
	// This performs no I/O and never fails.
	GetNextID() uint64

	// Send submits a serialized call payload and waits for the raw response
	// payload. The exchange itself happens asynchronously on the transport's
	// dispatch goroutine; Send only blocks the calling goroutine until the
	// result is handed back or ctx ends. Safe for concurrent use.
	Send(ctx context.Context, payload []byte) (resp []byte, err error)
}
