package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ValentinKolb/dWrite/lib/batcher"
	"github.com/ValentinKolb/dWrite/lib/table"
	"github.com/ValentinKolb/dWrite/rpc/common"
	"github.com/ValentinKolb/dWrite/rpc/serializer"
	transporthttp "github.com/ValentinKolb/dWrite/rpc/transport/http"
)

// newTestServer starts an HTTP test server that decodes each bulk write
// request with the JSON serializer and answers it via handle
func newTestServer(t *testing.T, handle func(req common.Message) common.Message) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("reading request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req common.Message
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("decoding request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp := handle(req)
		respBytes, err := json.Marshal(resp)
		if err != nil {
			t.Errorf("encoding response: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(respBytes)
	}))
}

func newTestBackend(t *testing.T, endpoint string) batcher.IBulkBackend {
	t.Helper()
	config := common.ClientConfig{
		TimeoutSecond: 5,
		Transport: common.ClientTransportConfig{
			Endpoints:  []string{endpoint},
			RetryCount: 1,
		},
	}
	backend, err := NewRPCBackend(100, config, transporthttp.NewHttpClientTransport(), serializer.NewJSONSerializer())
	if err != nil {
		t.Fatalf("NewRPCBackend failed: %v", err)
	}
	return backend
}

func TestBulkWriteFullSuccess(t *testing.T) {
	var received common.Message
	ts := newTestServer(t, func(req common.Message) common.Message {
		received = req
		return *common.NewBulkWriteResponse(req.Target, nil, nil)
	})
	defer ts.Close()

	backend := newTestBackend(t, ts.URL)

	requests := []table.WriteRequest{
		table.NewPutRequest(table.Item{{Name: "pk", Value: []byte("1")}}),
		table.NewDeleteRequest(table.Item{{Name: "pk", Value: []byte("2")}}),
	}
	result, err := backend.BulkWrite("events", requests)
	if err != nil {
		t.Fatalf("BulkWrite failed: %v", err)
	}

	if received.MsgType != common.MsgTBulkWrite || received.Target != "events" {
		t.Errorf("server received %s for %q, want BulkWrite for events", received.MsgType, received.Target)
	}
	if len(received.Requests) != 2 {
		t.Errorf("server received %d requests, want 2", len(received.Requests))
	}
	if len(result.Unprocessed) != 0 {
		t.Errorf("Unprocessed = %v, want empty on full success", result.Unprocessed)
	}
}

func TestBulkWriteUnprocessedSubset(t *testing.T) {
	ts := newTestServer(t, func(req common.Message) common.Message {
		// Decline the first request of every batch
		return *common.NewBulkWriteResponse(req.Target, req.Requests[:1], nil)
	})
	defer ts.Close()

	backend := newTestBackend(t, ts.URL)

	requests := []table.WriteRequest{
		table.NewPutRequest(table.Item{{Name: "pk", Value: []byte("1")}}),
		table.NewPutRequest(table.Item{{Name: "pk", Value: []byte("2")}}),
	}
	result, err := backend.BulkWrite("events", requests)
	if err != nil {
		t.Fatalf("BulkWrite failed: %v", err)
	}

	unprocessed := result.Unprocessed["events"]
	if len(unprocessed) != 1 {
		t.Fatalf("unprocessed count = %d, want 1", len(unprocessed))
	}
	pk, _ := unprocessed[0].Item.Get("pk")
	if string(pk) != "1" {
		t.Errorf("unprocessed pk = %q, want 1", pk)
	}
}

func TestBulkWriteServerError(t *testing.T) {
	ts := newTestServer(t, func(req common.Message) common.Message {
		return *common.NewErrorResponse(errors.New("table not found"))
	})
	defer ts.Close()

	backend := newTestBackend(t, ts.URL)

	_, err := backend.BulkWrite("missing", []table.WriteRequest{
		table.NewPutRequest(table.Item{{Name: "pk", Value: []byte("1")}}),
	})
	if err == nil {
		t.Fatalf("BulkWrite should surface a server error")
	}
	if !strings.Contains(err.Error(), "table not found") {
		t.Errorf("err = %v, want the server error message included", err)
	}
}

// TestBatchWriterOverRPC exercises the full client-side path: batch writer
// -> RPC backend -> HTTP transport -> server, including requeue of an
// unprocessed item during the drain.
func TestBatchWriterOverRPC(t *testing.T) {
	var batches [][]table.WriteRequest
	ts := newTestServer(t, func(req common.Message) common.Message {
		batches = append(batches, req.Requests)
		if len(batches) == 1 {
			// Decline the last request of the first batch once
			return *common.NewBulkWriteResponse(req.Target, req.Requests[len(req.Requests)-1:], nil)
		}
		return *common.NewBulkWriteResponse(req.Target, nil, nil)
	})
	defer ts.Close()

	backend := newTestBackend(t, ts.URL)

	w, err := batcher.NewBatchWriter("events", backend, batcher.Config{
		FlushAmount: 2,
		DedupKeys:   []string{"pk"},
	})
	if err != nil {
		t.Fatalf("NewBatchWriter failed: %v", err)
	}

	for _, pk := range []string{"a", "b", "c"} {
		if err := w.Put(table.Item{
			{Name: "pk", Value: []byte(pk)},
			{Name: "payload", Value: []byte("v")},
		}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if w.Buffered() != 0 {
		t.Errorf("Buffered() = %d after Close, want 0", w.Buffered())
	}
	// Batch 1: [a b] with b declined and requeued; putting c then refills
	// the buffer to the threshold, so batch 2 is [b c]
	if len(batches) != 2 {
		t.Fatalf("server saw %d batches, want 2", len(batches))
	}
	if len(batches[1]) != 2 {
		t.Fatalf("second batch size = %d, want 2", len(batches[1]))
	}
	first, _ := batches[1][0].Item.Get("pk")
	second, _ := batches[1][1].Item.Get("pk")
	if string(first) != "b" || string(second) != "c" {
		t.Errorf("second batch order = [%s %s], want [b c]", first, second)
	}
}
