// Package tcp implements a TCP socket-based client transport for the RPC
// system. It provides a concrete implementation of the base package's
// connector interface optimized for TCP connections.
//
// This package builds on the base package's transport functionality,
// inheriting its connection pooling, frame protocol and retry behavior. See
// the base package documentation for details on the underlying transport
// mechanisms.
//
// Key Components:
//
//   - clientConnector: TCP-specific implementation of base.IClientConnector.
//     It applies the configured socket buffer sizes, TCP_NODELAY, keepalive
//     and linger settings when a connection is established.
package tcp
