package batcher

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/dWrite/lib/table"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// BulkResult is the structured outcome of a bulk write. Unprocessed maps a
// target to the subset of the batch the backend declined to apply (for
// example under throughput limits). A missing or empty entry means the
// whole batch was applied.
type BulkResult struct {
	Unprocessed map[string][]table.WriteRequest
}

// IBulkBackend is the capability the batch writer depends on. Any storage
// client that can apply a bounded batch of write requests to a single
// target satisfies this interface.
type IBulkBackend interface {
	// BulkWrite applies the given requests to the target. The requests
	// slice holds at most the writer's flush amount. An error means the
	// delivery status of the whole batch is unknown; the writer does not
	// interpret error subtypes.
	BulkWrite(target string, requests []table.WriteRequest) (BulkResult, error)
}

// IBatchWriter buffers per-row mutations and sends them to an IBulkBackend
// in fixed-size batches. A writer is bound to exactly one target for its
// lifetime.
//
// A writer is owned by a single logical caller and is not safe for
// concurrent use: Put, Delete and the flushes they trigger all
// read-modify-write the same buffer. Callers that need concurrent access
// must serialize externally.
type IBatchWriter interface {
	// Put buffers an insert/overwrite of the given row. If the buffer
	// reaches the flush amount, a bulk write is issued before Put returns;
	// a backend failure during that flush is returned here and the batch
	// already handed to the backend is of unknown delivery status.
	Put(item table.Item) error
	// Delete buffers a removal of the row with the given key. Flush and
	// error semantics are identical to Put.
	Delete(key table.Item) error
	// Buffered returns the number of requests currently held in the buffer.
	Buffered() int
	// Close flushes repeatedly until the buffer is empty. It must be
	// called on every exit path; a deferred call is the intended usage.
	// If a flush during the drain fails, the error is returned and the
	// remaining buffered requests are lost.
	Close() error
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message. Backend failures are not wrapped in this type; they
// propagate unchanged from whichever operation triggered the flush.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInvalidConfig:
		errorCode = "InvalidConfig"
	case RetCMissingKeyAttribute:
		errorCode = "MissingKeyAttribute"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("BatchWriterError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess             RetCode = iota // 0: Operation executed successfully.
	RetCInvalidConfig                      // 1: Writer was constructed with invalid configuration.
	RetCMissingKeyAttribute                // 2: A configured dedup key attribute is absent from a request.
)

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

const (
	// DefaultFlushAmount is the batch size used when the config leaves
	// FlushAmount unset.
	DefaultFlushAmount = 25
)

// Config holds the tunable parameters of a batch writer.
type Config struct {
	// FlushAmount is the maximum number of requests sent per backend call.
	// A bulk write is issued as soon as the buffer reaches this length.
	// Zero selects DefaultFlushAmount; negative values are rejected.
	FlushAmount int

	// DedupKeys is the ordered list of primary-key attribute names. When
	// set, a new request replaces any buffered request with the same
	// extracted key values (the newest request wins). When empty, no
	// deduplication is performed.
	DedupKeys []string

	// ExitBackoff is slept between drain iterations during Close while
	// the buffer is still non-empty, spacing out retries against a
	// backend that keeps returning unprocessed items. Zero disables the
	// backoff; negative values are rejected.
	ExitBackoff time.Duration
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	flushAmount := c.FlushAmount
	if flushAmount == 0 {
		flushAmount = DefaultFlushAmount
	}
	dedup := "disabled"
	if len(c.DedupKeys) > 0 {
		dedup = fmt.Sprintf("%v", c.DedupKeys)
	}
	return fmt.Sprintf("flushAmount=%d dedupKeys=%s exitBackoff=%s", flushAmount, dedup, c.ExitBackoff)
}
