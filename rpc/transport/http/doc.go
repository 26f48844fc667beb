// Package http implements the HTTP transport for the RPC call plumbing.
// It accepts serialized call payloads from any number of goroutines, funnels
// them through one long-lived HTTP client for connection reuse, and returns
// each raw response to exactly the caller that asked for it.
//
// The package focuses on:
//   - A single dispatch goroutine owning the HTTP client, fed by an
//     unbounded multi-producer queue
//   - Per-request oneshot result delivery, so concurrent exchanges complete
//     independently and out of order
//   - A builder that either schedules the dispatch loop on an executor the
//     embedder already runs, or owns a dedicated background goroutine
//
// Key Components:
//
//   - HttpTransport: The shared dispatch core. Created via
//     NewHttpTransportBuilder, closed via Close, handed out to callers only
//     through per-destination handles.
//
//   - HttpHandle: Implements transport.IRPCTransport for one destination
//     URL. Handles are cheap, copyable and share the transport's call
//     identifier counter.
//
//   - HttpTransportBuilder: Assembles a transport, choosing the client
//     construction strategy (IClientBuilder) and the execution context
//     (IExecutor, or a private background goroutine when none is given).
//
// Request shape:
//
//	Every request is a POST with Content-Type application/json and the
//	payload as the body, unmodified. Only status 200 counts as success;
//	any other status surfaces as an *HttpError carrying the observed code.
//
// Thread Safety:
//
//	Handles may be used concurrently from any goroutine. The HTTP client is
//	only ever touched by the dispatch side, so no locking guards it. The
//	call identifier counter is the only cross-goroutine mutable state and
//	is maintained with atomic increments.
package http
