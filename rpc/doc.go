// Package rpc provides the client-side communication framework used by the
// batched table writer to reach a remote table store across network
// boundaries.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the RPC system,
//     including the Message protocol, configuration structures, and logging.
//
//   - transport: Network communication abstractions with pluggable
//     implementations (TCP, Unix sockets, HTTP).
//
//   - serializer: Message serialization with multiple format options
//     (Binary, JSON, GOB) for converting between Message objects and byte
//     arrays.
//
//   - client: The RPC implementation of the bulk write backend interface,
//     allowing the write buffer to interact with a remote table store
//     transparently.
//
// The server side of this protocol belongs to the storage service itself
// and is not part of this repository.
package rpc
