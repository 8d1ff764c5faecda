package serializer

import (
	"encoding/binary"
	"fmt"

	"github.com/ValentinKolb/dWrite/lib/table"
	"github.com/ValentinKolb/dWrite/rpc/common"
)

// NewBinarySerializer creates a new serializer using a custom binary format
// optimized for speed and efficiency
func NewBinarySerializer() IRPCSerializer {
	return &binarySerializerImpl{}
}

// binarySerializerImpl implements IRPCSerializer using a custom binary format
type binarySerializerImpl struct {
}

// Bit flags to indicate which optional fields are present
const (
	hasTarget      byte = 1 << 0
	hasRequests    byte = 1 << 1
	hasUnprocessed byte = 1 << 2
	hasErr         byte = 1 << 3
	hasMeta        byte = 1 << 4
)

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (s binarySerializerImpl) Serialize(msg common.Message) ([]byte, error) {
	// Calculate total size needed
	totalSize := s.sizeBytes(msg)
	result := make([]byte, totalSize)

	// Write message type
	result[0] = byte(msg.MsgType)

	// Initialize flags byte
	var flags byte = 0

	// Set position for writing
	pos := 2 // Start after MsgType and flags

	// Handle Target
	if msg.Target != "" {
		flags |= hasTarget
		targetBytes := []byte(msg.Target)
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(len(targetBytes)))
		pos += 4
		copy(result[pos:], targetBytes)
		pos += len(targetBytes)
	}

	// Handle Requests
	if msg.Requests != nil {
		flags |= hasRequests
		pos = writeRequestList(result, pos, msg.Requests)
	}

	// Handle Unprocessed
	if msg.Unprocessed != nil {
		flags |= hasUnprocessed
		pos = writeRequestList(result, pos, msg.Unprocessed)
	}

	// Handle Err
	if msg.Err != "" {
		flags |= hasErr
		errBytes := []byte(msg.Err)
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(len(errBytes)))
		pos += 4
		copy(result[pos:], errBytes)
		pos += len(errBytes)
	}

	// Handle Meta
	if msg.Meta != nil {
		flags |= hasMeta
		binary.BigEndian.PutUint32(result[pos:pos+4], uint32(len(msg.Meta)))
		pos += 4
		copy(result[pos:], msg.Meta)
		pos += len(msg.Meta)
	}

	// Write flags
	result[1] = flags

	return result[:pos], nil
}

func (s binarySerializerImpl) Deserialize(b []byte, msg *common.Message) error {
	if len(b) < 2 {
		return fmt.Errorf("message too short: %d bytes", len(b))
	}

	msg.MsgType = common.MessageType(b[0])
	flags := b[1]
	pos := 2

	var err error

	// Handle Target
	if flags&hasTarget != 0 {
		var targetBytes []byte
		if targetBytes, pos, err = readBytes(b, pos); err != nil {
			return fmt.Errorf("reading target: %v", err)
		}
		msg.Target = string(targetBytes)
	}

	// Handle Requests
	if flags&hasRequests != 0 {
		if msg.Requests, pos, err = readRequestList(b, pos); err != nil {
			return fmt.Errorf("reading requests: %v", err)
		}
	}

	// Handle Unprocessed
	if flags&hasUnprocessed != 0 {
		if msg.Unprocessed, pos, err = readRequestList(b, pos); err != nil {
			return fmt.Errorf("reading unprocessed: %v", err)
		}
	}

	// Handle Err
	if flags&hasErr != 0 {
		var errBytes []byte
		if errBytes, pos, err = readBytes(b, pos); err != nil {
			return fmt.Errorf("reading err: %v", err)
		}
		msg.Err = string(errBytes)
	}

	// Handle Meta
	if flags&hasMeta != 0 {
		if msg.Meta, pos, err = readBytes(b, pos); err != nil {
			return fmt.Errorf("reading meta: %v", err)
		}
	}

	if pos != len(b) {
		return fmt.Errorf("trailing bytes: consumed %d of %d", pos, len(b))
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// sizeBytes calculates the serialized size of a message
func (s binarySerializerImpl) sizeBytes(msg common.Message) int {
	size := 2 // MsgType + flags
	if msg.Target != "" {
		size += 4 + len(msg.Target)
	}
	if msg.Requests != nil {
		size += requestListSize(msg.Requests)
	}
	if msg.Unprocessed != nil {
		size += requestListSize(msg.Unprocessed)
	}
	if msg.Err != "" {
		size += 4 + len(msg.Err)
	}
	if msg.Meta != nil {
		size += 4 + len(msg.Meta)
	}
	return size
}

// requestListSize calculates the encoded size of a request list
func requestListSize(requests []table.WriteRequest) int {
	size := 4 // count
	for _, req := range requests {
		size += 1 + 4 // kind + field count
		for _, f := range req.Fields() {
			size += 4 + len(f.Name) + 4 + len(f.Value)
		}
	}
	return size
}

// writeRequestList encodes a request list at pos and returns the new position.
// Layout: count (u32), then per request: kind (u8), field count (u32), and
// per field: name length (u32), name, value length (u32), value.
func writeRequestList(b []byte, pos int, requests []table.WriteRequest) int {
	binary.BigEndian.PutUint32(b[pos:pos+4], uint32(len(requests)))
	pos += 4

	for _, req := range requests {
		b[pos] = byte(req.Kind)
		pos++

		fields := req.Fields()
		binary.BigEndian.PutUint32(b[pos:pos+4], uint32(len(fields)))
		pos += 4

		for _, f := range fields {
			binary.BigEndian.PutUint32(b[pos:pos+4], uint32(len(f.Name)))
			pos += 4
			copy(b[pos:], f.Name)
			pos += len(f.Name)

			binary.BigEndian.PutUint32(b[pos:pos+4], uint32(len(f.Value)))
			pos += 4
			copy(b[pos:], f.Value)
			pos += len(f.Value)
		}
	}
	return pos
}

// readRequestList decodes a request list at pos and returns the new position
func readRequestList(b []byte, pos int) ([]table.WriteRequest, int, error) {
	if pos+4 > len(b) {
		return nil, pos, fmt.Errorf("truncated request count")
	}
	count := binary.BigEndian.Uint32(b[pos : pos+4])
	pos += 4

	requests := make([]table.WriteRequest, 0, count)
	for i := uint32(0); i < count; i++ {
		if pos+5 > len(b) {
			return nil, pos, fmt.Errorf("truncated request header")
		}
		kind := table.RequestKind(b[pos])
		pos++

		fieldCount := binary.BigEndian.Uint32(b[pos : pos+4])
		pos += 4

		var fields table.Item
		for j := uint32(0); j < fieldCount; j++ {
			var name, value []byte
			var err error
			if name, pos, err = readBytes(b, pos); err != nil {
				return nil, pos, err
			}
			if value, pos, err = readBytes(b, pos); err != nil {
				return nil, pos, err
			}
			fields = append(fields, table.Field{Name: string(name), Value: value})
		}

		switch kind {
		case table.KindPut:
			requests = append(requests, table.NewPutRequest(fields))
		case table.KindDelete:
			requests = append(requests, table.NewDeleteRequest(fields))
		default:
			return nil, pos, fmt.Errorf("unknown request kind: %d", kind)
		}
	}
	return requests, pos, nil
}

// readBytes reads a length-prefixed byte slice at pos and returns the new position
func readBytes(b []byte, pos int) ([]byte, int, error) {
	if pos+4 > len(b) {
		return nil, pos, fmt.Errorf("truncated length prefix")
	}
	length := int(binary.BigEndian.Uint32(b[pos : pos+4]))
	pos += 4
	if pos+length > len(b) {
		return nil, pos, fmt.Errorf("truncated payload: need %d bytes", length)
	}
	data := make([]byte, length)
	copy(data, b[pos:pos+length])
	return data, pos + length, nil
}
