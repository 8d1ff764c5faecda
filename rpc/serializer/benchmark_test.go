package serializer

import (
	"testing"

	"github.com/ValentinKolb/dWrite/lib/table"
	"github.com/ValentinKolb/dWrite/rpc/common"
)

// benchmarkMessages returns a set of messages for targeted benchmarking
func benchmarkMessages() map[string]common.Message {
	largeItem := table.Item{
		{Name: "pk", Value: []byte("key")},
		{Name: "payload", Value: make([]byte, 1024)}, // 1KB of data
	}

	fullBatch := make([]table.WriteRequest, 25)
	for i := range fullBatch {
		fullBatch[i] = table.NewPutRequest(table.Item{
			{Name: "pk", Value: []byte("key")},
			{Name: "payload", Value: []byte("medium length value for testing serialization")},
		})
	}

	return map[string]common.Message{
		"Empty": {
			MsgType: common.MsgTSuccess,
		},
		"SingleSmallPut": {
			MsgType: common.MsgTBulkWrite,
			Target:  "events",
			Requests: []table.WriteRequest{
				table.NewPutRequest(table.Item{{Name: "pk", Value: []byte("k")}}),
			},
		},
		"SingleDelete": {
			MsgType: common.MsgTBulkWrite,
			Target:  "events",
			Requests: []table.WriteRequest{
				table.NewDeleteRequest(table.Item{{Name: "pk", Value: []byte("k")}}),
			},
		},
		"SingleLargePut": {
			MsgType:  common.MsgTBulkWrite,
			Target:   "events",
			Requests: []table.WriteRequest{table.NewPutRequest(largeItem)},
		},
		"FullBatch": {
			MsgType:  common.MsgTBulkWrite,
			Target:   "events",
			Requests: fullBatch,
		},
		"UnprocessedResponse": {
			MsgType:     common.MsgTBulkWrite,
			Target:      "events",
			Unprocessed: fullBatch[:5],
		},
		"ErrorMessage": {
			MsgType: common.MsgTError,
			Err:     "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
		},
	}
}

// BenchmarkSerialize measures serialization performance for each
// serializer and message shape
func BenchmarkSerialize(b *testing.B) {
	messages := benchmarkMessages()

	for serializerName, factory := range testSerializers {
		serializer := factory()
		for msgName, msg := range messages {
			b.Run(serializerName+"/"+msgName, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := serializer.Serialize(msg); err != nil {
						b.Fatalf("Serialize failed: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDeserialize measures deserialization performance for each
// serializer and message shape
func BenchmarkDeserialize(b *testing.B) {
	messages := benchmarkMessages()

	for serializerName, factory := range testSerializers {
		serializer := factory()
		for msgName, msg := range messages {
			data, err := serializer.Serialize(msg)
			if err != nil {
				b.Fatalf("Serialize failed: %v", err)
			}
			b.Run(serializerName+"/"+msgName, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					var result common.Message
					if err := serializer.Deserialize(data, &result); err != nil {
						b.Fatalf("Deserialize failed: %v", err)
					}
				}
			})
		}
	}
}
