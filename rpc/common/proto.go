package common

import (
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/dWrite/lib/table"
)

// --------------------------------------------------------------------------
// Message Structure
// --------------------------------------------------------------------------

// Message represents a single message used for both requests and responses.
// Which fields are used depends on the type of message.
type Message struct {
	// Type of message
	MsgType MessageType `json:"msg_type"`

	// General fields
	Target   string               `json:"target,omitempty"`   // Used for: BulkWrite
	Requests []table.WriteRequest `json:"requests,omitempty"` // Used for: BulkWrite (request)

	// Response only fields
	Unprocessed []table.WriteRequest `json:"unprocessed,omitempty"` // Used for: BulkWrite responses
	Err         string               `json:"err,omitempty"`         // Empty if no error, otherwise contains the error message

	// Meta information
	Meta []byte `json:"meta,omitempty"` // Unused, can be used for additional Adapters
}

// --------------------------------------------------------------------------
// Message Factory Functions
// --------------------------------------------------------------------------

// NewBulkWriteRequest creates a new BulkWrite request for the given target
func NewBulkWriteRequest(target string, requests []table.WriteRequest) *Message {
	return &Message{
		MsgType:  MsgTBulkWrite,
		Target:   target,
		Requests: requests,
	}
}

// NewBulkWriteResponse creates a new BulkWrite response. The unprocessed
// slice holds the subset of the request batch the backend declined.
func NewBulkWriteResponse(target string, unprocessed []table.WriteRequest, err error) *Message {
	msg := &Message{
		MsgType:     MsgTBulkWrite,
		Target:      target,
		Unprocessed: unprocessed,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// NewErrorResponse creates a generic error response
func NewErrorResponse(err error) *Message {
	msg := &Message{
		MsgType: MsgTError,
	}
	if err != nil {
		msg.Err = err.Error()
	}
	return msg
}

// --------------------------------------------------------------------------
// Message Types
// --------------------------------------------------------------------------

type MessageType uint8

const (
	MsgTUnknown MessageType = iota
	MsgTSuccess             // Indicates a successful operation
	MsgTError               // Indicates an error occurred

	// Table store operations

	MsgTBulkWrite // Apply a batch of write requests to one target

	// Extension point

	MsgTCustom // Custom operation type
)

// String returns a human-readable name for the message type
func (t MessageType) String() string {
	switch t {
	case MsgTSuccess:
		return "Success"
	case MsgTError:
		return "Error"
	case MsgTBulkWrite:
		return "BulkWrite"
	case MsgTCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// MarshalJSON implements the json.Marshaler interface
func (t MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Success":
		*t = MsgTSuccess
	case "Error":
		*t = MsgTError
	case "BulkWrite":
		*t = MsgTBulkWrite
	case "Custom":
		*t = MsgTCustom
	case "Unknown":
		*t = MsgTUnknown
	default:
		return fmt.Errorf("unknown message type: %s", s)
	}
	return nil
}
