// Package unix implements a Unix domain socket client transport for the RPC
// system. It provides a concrete implementation of the base package's
// connector interface for same-host communication without the TCP stack.
//
// This package builds on the base package's transport functionality,
// inheriting its connection pooling, frame protocol and retry behavior. See
// the base package documentation for details on the underlying transport
// mechanisms.
//
// Key Components:
//
//   - clientConnector: Unix-socket-specific implementation of
//     base.IClientConnector. It applies the configured socket buffer sizes
//     when a connection is established.
package unix
