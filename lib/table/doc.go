// Package table defines the data model shared by the write buffer and the
// RPC layer: attribute-based items, tagged write requests and primary-key
// tuple extraction.
//
// The package focuses on:
//   - Representing a table row as an ordered sequence of named attributes
//   - Modelling a single mutation as a tagged Put or Delete request
//   - Extracting primary-key values for deduplication in a caller-defined order
//
// Key Components:
//
//   - Field/Item: An Item is an ordered list of Fields. Ordering is preserved
//     exactly as the caller supplied it, which keeps serialized requests
//     deterministic and makes key extraction order explicit.
//
//   - WriteRequest: A tagged variant holding either the full item of a put
//     or the key of a delete. Requests are treated as immutable once created.
//
//   - KeyTuple: The ordered attribute values extracted from a request
//     according to a list of key attribute names. Two requests collapse to
//     the same logical row exactly when their KeyTuples are equal.
//
// Thread Safety:
//
//	All types in this package are plain values without internal
//	synchronization. They are safe to share between goroutines as long as
//	callers follow the immutability convention and do not mutate an Item
//	after handing it to a WriteRequest.
package table
