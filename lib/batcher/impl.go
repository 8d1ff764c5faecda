package batcher

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/dWrite/lib/table"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
)

var (
	Logger = logger.GetLogger("batcher")

	metricFlushes     = metrics.NewCounter("dwrite_batcher_flushes_total")
	metricSent        = metrics.NewCounter("dwrite_batcher_requests_sent_total")
	metricUnprocessed = metrics.NewCounter("dwrite_batcher_requests_unprocessed_total")
	metricDedupDrops  = metrics.NewCounter("dwrite_batcher_dedup_dropped_total")
)

// NewBatchWriter creates a batch writer for the given target backed by the
// given bulk backend.
//
// Usage:
//
//	w, err := batcher.NewBatchWriter("events", backend, batcher.Config{
//		FlushAmount: 25,
//		DedupKeys:   []string{"pk", "sk"},
//	})
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
//	err = w.Put(item)
func NewBatchWriter(target string, backend IBulkBackend, config Config) (IBatchWriter, error) {
	if target == "" {
		return nil, NewError(RetCInvalidConfig, "target must not be empty")
	}
	if backend == nil {
		return nil, NewError(RetCInvalidConfig, "backend must not be nil")
	}
	if config.FlushAmount < 0 {
		return nil, NewError(RetCInvalidConfig, fmt.Sprintf("flush amount must be positive, got %d", config.FlushAmount))
	}
	if config.ExitBackoff < 0 {
		return nil, NewError(RetCInvalidConfig, fmt.Sprintf("exit backoff must not be negative, got %s", config.ExitBackoff))
	}

	flushAmount := config.FlushAmount
	if flushAmount == 0 {
		flushAmount = DefaultFlushAmount
	}

	return &batchWriter{
		target:      target,
		backend:     backend,
		flushAmount: flushAmount,
		dedupKeys:   config.DedupKeys,
		exitBackoff: config.ExitBackoff,
	}, nil
}

// batchWriter implements IBatchWriter on top of a plain slice used both as
// a FIFO queue (append at the back, send from the front) and as the scan
// target for deduplication.
type batchWriter struct {
	target      string
	backend     IBulkBackend
	buffer      []table.WriteRequest
	flushAmount int
	dedupKeys   []string
	exitBackoff time.Duration
}

// --------------------------------------------------------------------------
// Interface Methods (docu see batcher.IBatchWriter)
// --------------------------------------------------------------------------

func (w *batchWriter) Put(item table.Item) error {
	return w.addAndProcess(table.NewPutRequest(item))
}

func (w *batchWriter) Delete(key table.Item) error {
	return w.addAndProcess(table.NewDeleteRequest(key))
}

func (w *batchWriter) Buffered() int {
	return len(w.buffer)
}

func (w *batchWriter) Close() error {
	// Keep flushing whatever is left until the buffer is empty, no matter
	// how far below the threshold it already is.
	for len(w.buffer) > 0 {
		if err := w.flush(); err != nil {
			return err
		}
		if len(w.buffer) > 0 && w.exitBackoff > 0 {
			time.Sleep(w.exitBackoff)
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// addAndProcess runs dedup-and-append for the request and flushes once the
// buffer has reached the flush amount.
func (w *batchWriter) addAndProcess(req table.WriteRequest) error {
	if len(w.dedupKeys) > 0 {
		if err := w.removeDuplicate(req); err != nil {
			return err
		}
	}
	w.buffer = append(w.buffer, req)

	if len(w.buffer) >= w.flushAmount {
		return w.flush()
	}
	return nil
}

// removeDuplicate drops the buffered request addressing the same logical
// row as req, if one exists. The buffer never holds two requests with
// equal key tuples, so at most one entry is removed.
func (w *batchWriter) removeDuplicate(req table.WriteRequest) error {
	newKey, err := req.ExtractKey(w.dedupKeys)
	if err != nil {
		return NewError(RetCMissingKeyAttribute, err.Error())
	}

	for i, buffered := range w.buffer {
		key, err := buffered.ExtractKey(w.dedupKeys)
		if err != nil {
			return NewError(RetCMissingKeyAttribute, err.Error())
		}
		if key.Equal(newKey) {
			Logger.Debugf("dedup: dropping buffered %s request superseded by new %s request", buffered.Kind, req.Kind)
			w.buffer = append(w.buffer[:i], w.buffer[i+1:]...)
			metricDedupDrops.Inc()
			break
		}
	}
	return nil
}

// flush sends the first flushAmount buffered requests to the backend and
// requeues whatever the backend returns as unprocessed at the back of the
// buffer. On a backend error the batch is not restored; its delivery
// status is unknown to the caller.
func (w *batchWriter) flush() error {
	n := w.flushAmount
	if len(w.buffer) < n {
		n = len(w.buffer)
	}
	batch := w.buffer[:n:n]
	w.buffer = w.buffer[n:]

	result, err := w.backend.BulkWrite(w.target, batch)
	if err != nil {
		return err
	}

	metricFlushes.Inc()
	metricSent.Add(n)

	// Unprocessed requests go to the back of the buffer, behind anything
	// enqueued while the call was in flight. They already passed dedup
	// once and are requeued verbatim.
	unprocessed := result.Unprocessed[w.target]
	if len(unprocessed) > 0 {
		w.buffer = append(w.buffer, unprocessed...)
		metricUnprocessed.Add(len(unprocessed))
	}

	Logger.Debugf("bulk write for %q sent %d, unprocessed %d, buffered %d",
		w.target, n, len(unprocessed), len(w.buffer))

	return nil
}
