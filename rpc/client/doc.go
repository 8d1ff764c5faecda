// Package client provides the remote implementation of the batch writer's
// bulk write backend, allowing the write buffer to talk to a table store
// over the RPC system.
//
// The package focuses on:
//   - Implementing the batcher.IBulkBackend interface over any transport
//   - Translating backend calls into the Message wire protocol
//   - Uniform error handling for transport and server-side failures
//
// Key Components:
//
//   - NewRPCBackend: Factory that connects the given transport and returns
//     a bulk write backend bound to one shard. The transport and serializer
//     are injected, so the backend works over HTTP, TCP or Unix sockets
//     with any of the available serialization formats.
//
// Error Semantics:
//
//	Transport failures, serialization failures and server-reported errors
//	are all surfaced as plain errors from BulkWrite. The batch writer
//	treats any of them as "batch delivery unknown"; only the unprocessed
//	items reported in a successful response are retried.
//
// Usage:
//
//	backend, err := client.NewRPCBackend(shardId, config,
//		tcp.NewTCPClientTransport(), serializer.NewBinarySerializer())
//	if err != nil {
//		return err
//	}
//	w, err := batcher.NewBatchWriter("events", backend, batcher.Config{})
package client
