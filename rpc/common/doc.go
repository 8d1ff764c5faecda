// Package common provides core data structures and utilities shared across
// the RPC layer of the batched table writer. It defines fundamental types,
// configuration structures, and protocol elements used by other packages.
//
// The package focuses on:
//   - Message protocol definition for client/server communication
//   - Configuration structures for client components
//   - Custom logging implementation shared by all packages
//
// Key Components:
//
//   - Message: Core data structure for all RPC communication. A bulk write
//     request carries the target and the batch of write requests; the
//     response carries the unprocessed subset. Factory functions create the
//     individual request and response shapes.
//
//   - MessageType: Enumeration defining the supported operation types, with
//     string-based JSON encoding for readable wire payloads.
//
//   - ClientConfig: Configuration for client components, controlling
//     connection parameters, timeouts, retry behavior and socket options.
//
//   - Logger: Custom logging implementation built on Dragonboat's logging
//     facade, providing consistent formatting across the application.
package common
