// Package http implements an HTTP-based client transport for the RPC
// system, enabling communication with a remote table store over plain HTTP.
//
// The package focuses on:
//   - Client-side HTTP transport for sending RPC requests to servers
//   - Round-robin load balancing across multiple server endpoints
//   - Request routing based on shard IDs encoded in the URL path
//
// Key Components:
//
//   - httpClientTransport: Implements the IRPCClientTransport interface,
//     managing connections to server endpoints, routing each request to
//     POST <endpoint>/<shardId>, and retrying failed requests.
//
// Thread Safety:
//
//	The client transport is thread-safe and can be used concurrently. It
//	uses atomic operations for the round-robin counter when selecting
//	server endpoints.
//
// This implementation offers several advantages:
//   - Simple integration with existing HTTP infrastructure
//   - Built-in load balancing across multiple server endpoints
//   - Straightforward error handling and retry mechanisms
package http
