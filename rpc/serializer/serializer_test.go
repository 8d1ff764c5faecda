package serializer

import (
	"reflect"
	"testing"

	"github.com/ValentinKolb/dWrite/lib/table"
	"github.com/ValentinKolb/dWrite/rpc/common"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() IRPCSerializer{
	"JSON":   NewJSONSerializer,
	"GOB":    NewGOBSerializer,
	"Binary": NewBinarySerializer,
}

// testMessages creates a set of test messages with different fields filled
func testMessages() []common.Message {
	return []common.Message{
		// Basic message with just a type
		{MsgType: common.MsgTSuccess},

		// Bulk write request with a mixed batch
		{
			MsgType: common.MsgTBulkWrite,
			Target:  "events",
			Requests: []table.WriteRequest{
				table.NewPutRequest(table.Item{
					{Name: "pk", Value: []byte("1")},
					{Name: "payload", Value: []byte("hello world")},
				}),
				table.NewDeleteRequest(table.Item{
					{Name: "pk", Value: []byte("2")},
				}),
			},
		},

		// Bulk write response with unprocessed items
		{
			MsgType: common.MsgTBulkWrite,
			Target:  "events",
			Unprocessed: []table.WriteRequest{
				table.NewPutRequest(table.Item{
					{Name: "pk", Value: []byte("1")},
					{Name: "payload", Value: []byte("declined")},
				}),
			},
		},

		// Error response
		{
			MsgType: common.MsgTError,
			Err:     "test error message",
		},

		// Message with all fields filled
		{
			MsgType: common.MsgTBulkWrite,
			Target:  "test-target",
			Requests: []table.WriteRequest{
				table.NewPutRequest(table.Item{
					{Name: "pk", Value: []byte("composite")},
					{Name: "sk", Value: []byte("a")},
					{Name: "blob", Value: []byte{0x00, 0x01, 0xff}},
				}),
			},
			Unprocessed: []table.WriteRequest{
				table.NewDeleteRequest(table.Item{
					{Name: "pk", Value: []byte("composite")},
					{Name: "sk", Value: []byte("b")},
				}),
			},
			Err:  "partial failure",
			Meta: []byte("test-meta-data"),
		},
	}
}

// TestSerializerRoundTrip tests that messages can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	messages := testMessages()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for i, msg := range messages {
				// Serialize
				data, err := serializer.Serialize(msg)
				if err != nil {
					t.Errorf("Failed to serialize message %d: %v", i, err)
					continue
				}

				// Deserialize
				var result common.Message
				err = serializer.Deserialize(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize message %d: %v", i, err)
					continue
				}

				// Compare
				if !reflect.DeepEqual(msg, result) {
					t.Errorf("Message %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, msg, result)
				}
			}
		})
	}
}

// TestBinaryRejectsTruncated tests that the binary serializer fails cleanly
// on truncated input instead of panicking
func TestBinaryRejectsTruncated(t *testing.T) {
	serializer := NewBinarySerializer()

	msg := common.Message{
		MsgType: common.MsgTBulkWrite,
		Target:  "events",
		Requests: []table.WriteRequest{
			table.NewPutRequest(table.Item{{Name: "pk", Value: []byte("1")}}),
		},
	}
	data, err := serializer.Serialize(msg)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	for cut := 0; cut < len(data); cut++ {
		var result common.Message
		if err := serializer.Deserialize(data[:cut], &result); err == nil {
			t.Errorf("Deserialize of %d/%d bytes should fail", cut, len(data))
		}
	}
}
