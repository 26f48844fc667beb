// Package common provides configuration structures and logging utilities
// shared across the transport packages.
//
// The package focuses on:
//   - Configuration for the default HTTP client construction
//   - Custom logging with named, individually levelled loggers
//
// Key Components:
//
//   - ClientConfig: Configuration for the default HTTP client builder,
//     controlling timeouts and connection pooling. Embedders supplying their
//     own client builder bypass this entirely.
//
//   - Logger factory: A custom logging implementation with consistent
//     formatting across the library, built on named loggers so the embedding
//     application can level each subsystem independently.
package common
