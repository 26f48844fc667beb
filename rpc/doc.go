// Package rpc contains the transport half of a JSON-RPC client library.
// The call plumbing (serialization, method dispatch, protocol-level call IDs)
// lives with the consumer; what this tree provides is the machinery to carry
// already-serialized call payloads to a server and bring the raw responses
// back.
//
// The package is organized into several subpackages:
//
//   - common: Configuration structures and logging shared across the
//     transport implementations.
//
//   - transport: The contract a transport must fulfil towards the RPC call
//     plumbing (submit bytes, receive bytes, issue call identifiers).
//
//   - transport/http: The HTTP implementation: a shared dispatch core that
//     funnels requests from arbitrary goroutines through a single HTTP
//     client, with per-destination handles on top.
package rpc
