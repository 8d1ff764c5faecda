// Package base provides the foundation for socket-based client transports,
// implementing core RPC communication independent of the specific network
// protocol (TCP, Unix sockets, etc.). It serves as a base layer that is
// extended with protocol-specific connectors.
//
// The package focuses on:
//   - Protocol-agnostic client transport implementation
//   - Connection pooling with round-robin distribution over endpoints
//   - Frame-based message protocol with shardID and requestID tracking
//   - Response correlation back to the originating request
//   - Robust error handling with retries, backoff and reconnection logic
//
// Key Components:
//
//   - IClientConnector: Interface for protocol-specific operations (dialing
//     and socket option upgrades) that lets the base transport be extended
//     with different network protocols.
//
//   - clientTransport: The shared transport engine. It maintains a pool of
//     connections per endpoint, writes length-prefixed frames, and runs one
//     reader goroutine per connection that routes response frames to the
//     waiting request via an xsync request map.
//
// Wire Format:
//
//	Each frame consists of a 20 byte header (shard ID, request ID, payload
//	length, all big endian) followed by the opaque payload. Multiple
//	requests can be in flight on one connection; the request ID correlates
//	responses.
//
// Thread Safety:
//
//	The transport is safe for concurrent use. Frame writes are serialized
//	per connection; response routing is lock-free via the request map.
package base
