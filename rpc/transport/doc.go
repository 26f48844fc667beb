// Package transport defines the contract between the RPC call plumbing and
// a transport implementation. It provides a common interface so the call
// plumbing never touches connection management, pooling or scheduling.
//
// The package focuses on:
//   - Defining a clear interface for client-side transports
//   - Keeping the contract down to two operations: issue a call identifier
//     and exchange a byte payload for a byte response
//
// Key Components:
//
//   - IRPCTransport: Interface implemented by per-destination transport
//     handles. GetNextID hands out correlation identifiers, Send performs
//     the actual exchange.
package transport
