// Package transport provides the network communication layer used by the
// bulk write client to reach a remote table store. It defines the client
// transport abstraction and hosts pluggable implementations in its
// subpackages.
//
// The package is organized into several subpackages:
//
//   - base: Protocol-agnostic client transport implementation with
//     connection pooling, frame-based request/response correlation, and
//     retry with backoff. Extended by the socket-based transports.
//
//   - tcp: TCP socket transport built on base.
//
//   - unix: Unix domain socket transport built on base.
//
//   - http: HTTP transport with round-robin load balancing across endpoints.
//
// All transports carry opaque byte payloads: serialization of messages is
// the responsibility of the serializer package, routing of requests to the
// correct shard is expressed through the shard ID passed to Send.
package transport
