package client

import (
	"github.com/ValentinKolb/dWrite/lib/batcher"
	"github.com/ValentinKolb/dWrite/lib/table"
	"github.com/ValentinKolb/dWrite/rpc/common"
	"github.com/ValentinKolb/dWrite/rpc/serializer"
	"github.com/ValentinKolb/dWrite/rpc/transport"
)

// NewRPCBackend creates a new RPC bulk write backend
// The function takes a shard ID, a config, a transport and a serializer as parameters
// It returns a batcher.IBulkBackend and an error
func NewRPCBackend(
	shardId uint64,
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) (batcher.IBulkBackend, error) {

	// Connect the transport
	err := transport.Connect(config)
	if err != nil {
		return nil, err
	}

	// Create a new RPC backend
	b := rpcBackend{
		rpcClientAdapter{
			shardId:    shardId,
			config:     config,
			transport:  transport,
			serializer: serializer,
		},
	}

	// Return the RPC backend
	return &b, nil
}

type rpcBackend struct {
	rpcClientAdapter
}

// --------------------------------------------------------------------------
// Interface Methods (docu see the batcher package in interface.go)
// --------------------------------------------------------------------------

func (b *rpcBackend) BulkWrite(target string, requests []table.WriteRequest) (batcher.BulkResult, error) {
	req := common.NewBulkWriteRequest(target, requests)
	resp, err := invokeRPCRequest(b.shardId, req, b.transport, b.serializer)
	if err != nil {
		return batcher.BulkResult{}, err
	}

	result := batcher.BulkResult{}
	if len(resp.Unprocessed) > 0 {
		result.Unprocessed = map[string][]table.WriteRequest{
			target: resp.Unprocessed,
		}
	}
	return result, nil
}
