// Package async provides the concurrency primitives used by the transport
// layer to move work between caller goroutines and the dispatch goroutine.
//
// The package focuses on:
//   - Accepting work from any number of concurrent producers without locks
//   - Handing exactly one result back to exactly one waiting consumer
//   - Making peer disappearance observable instead of hanging
//
// Key Components:
//
//   - Queue: An unbounded lock-free multi-producer single-consumer queue.
//     Producers push from arbitrary goroutines; a single consumer drains
//     items through a channel. Closing the queue rejects further pushes
//     while still delivering everything already accepted.
//
//   - Oneshot (Sender/Receiver): A single-use handoff primitive carrying one
//     value from one producer to one consumer. Either side can drop out,
//     and the other side observes that as an explicit condition rather
//     than blocking forever.
package async
