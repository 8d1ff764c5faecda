package base

import (
	"bytes"
	"net"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	payload := []byte("bulk write payload")

	errCh := make(chan error, 1)
	go func() {
		errCh <- writeFrame(client, 42, 7, payload)
	}()

	shardID, requestID, data, err := readFrame(server, nil)
	if err != nil {
		t.Fatalf("readFrame failed: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("writeFrame failed: %v", err)
	}

	if shardID != 42 || requestID != 7 {
		t.Errorf("header = (%d, %d), want (42, 7)", shardID, requestID)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("payload = %q, want %q", data, payload)
	}
}

func TestFrameEmptyPayload(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		_ = writeFrame(client, 1, 2, nil)
	}()

	_, requestID, data, err := readFrame(server, nil)
	if err != nil {
		t.Fatalf("readFrame failed: %v", err)
	}
	if requestID != 2 {
		t.Errorf("requestID = %d, want 2", requestID)
	}
	if len(data) != 0 {
		t.Errorf("payload length = %d, want 0", len(data))
	}
}

func TestFrameReusesBuffer(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	payload := []byte("abc")

	go func() {
		_ = writeFrame(client, 1, 1, payload)
	}()

	buf := make([]byte, 64)
	_, _, data, err := readFrame(server, buf)
	if err != nil {
		t.Fatalf("readFrame failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("payload = %q, want %q", data, payload)
	}
	// The returned slice must alias the caller-provided buffer
	if &data[0] != &buf[0] {
		t.Errorf("readFrame should reuse the provided buffer")
	}
}
