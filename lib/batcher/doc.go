// Package batcher implements a client-side write buffer for a remote table
// store. It accumulates per-row put and delete requests, collapses redundant
// writes to the same logical row, and sends the buffered requests to a bulk
// write backend in fixed-size batches, retrying whatever the backend
// declines to process.
//
// The package focuses on:
//   - Reducing round trips by turning per-row mutations into bulk writes
//   - Deduplicating buffered requests by configurable primary-key attributes
//   - Requeueing backend-declined ("unprocessed") requests for later batches
//   - Draining the buffer completely on Close
//
// Key Components:
//
//   - IBulkBackend: The single capability the writer depends on. Any client
//     that can apply a bounded batch of requests to one target satisfies it;
//     the rpc/client package provides the remote implementation.
//
//   - IBatchWriter: The buffering state machine. Put and Delete append to an
//     ordered buffer (after optional dedup) and trigger a flush once the
//     buffer reaches the configured flush amount. Close flushes until the
//     buffer is empty, sleeping a fixed ExitBackoff between iterations while
//     the backend keeps returning unprocessed items.
//
// Ordering:
//
//	Requests reach the backend in enqueue order (after dedup collapses
//	older entries). Unprocessed requests returned by the backend are
//	requeued at the back of the buffer, behind work enqueued while the
//	call was in flight; they are never reprioritized to the front.
//
// Error Semantics:
//
//	A failing backend call surfaces unchanged from whichever operation
//	triggered the flush. The batch already handed to the backend is NOT
//	restored to the buffer: its delivery status is unknown and the caller
//	must treat it as such. There is no internal retry for hard failures;
//	only the backend's unprocessed-items mechanism is retried.
//
// Thread Safety:
//
//	A writer has a single logical owner. Put, Delete and Close must not be
//	called concurrently; callers needing shared access must add their own
//	synchronization around the whole writer.
//
// Usage:
//
//	w, err := batcher.NewBatchWriter("events", backend, batcher.Config{DedupKeys: []string{"pk"}})
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
//	for _, row := range rows {
//		if err := w.Put(row); err != nil {
//			return err
//		}
//	}
package batcher
