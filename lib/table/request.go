package table

import (
	"bytes"
	"fmt"
)

// --------------------------------------------------------------------------
// Write Request (tagged variant)
// --------------------------------------------------------------------------

// RequestKind discriminates the two mutation variants.
type RequestKind uint8

const (
	KindUnknown RequestKind = iota
	KindPut                 // Insert or overwrite a full row
	KindDelete              // Remove a row by its key
)

func (k RequestKind) String() string {
	switch k {
	case KindPut:
		return "Put"
	case KindDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// WriteRequest is a single buffered mutation. Exactly one of Item (for
// KindPut) or Key (for KindDelete) is set, depending on Kind.
// A WriteRequest must not be modified after creation.
type WriteRequest struct {
	Kind RequestKind `json:"kind"`
	Item Item        `json:"item,omitempty"` // Used for: Put
	Key  Item        `json:"key,omitempty"`  // Used for: Delete
}

// NewPutRequest creates a put request for the given row.
func NewPutRequest(item Item) WriteRequest {
	return WriteRequest{
		Kind: KindPut,
		Item: item,
	}
}

// NewDeleteRequest creates a delete request for the given row key.
func NewDeleteRequest(key Item) WriteRequest {
	return WriteRequest{
		Kind: KindDelete,
		Key:  key,
	}
}

// Fields returns the attribute mapping key values are extracted from:
// the full item for a put, the key for a delete.
func (r WriteRequest) Fields() Item {
	if r.Kind == KindDelete {
		return r.Key
	}
	return r.Item
}

// --------------------------------------------------------------------------
// Key Extraction
// --------------------------------------------------------------------------

// KeyTuple is the ordered sequence of primary-key attribute values
// extracted from a WriteRequest.
type KeyTuple [][]byte

// Equal reports whether two key tuples hold the same values in the
// same order.
func (t KeyTuple) Equal(other KeyTuple) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if !bytes.Equal(t[i], other[i]) {
			return false
		}
	}
	return true
}

// ExtractKey extracts the values of the named attributes from the request
// in the order the names are given. Put requests are inspected on their
// item, delete requests on their key; the two variants are compared purely
// on the extracted values.
//
// A name that is not present in the request is a caller error (the
// configured names must be the table's actual primary key) and returns an
// error rather than silently degrading comparison behavior.
func (r WriteRequest) ExtractKey(names []string) (KeyTuple, error) {
	fields := r.Fields()
	tuple := make(KeyTuple, len(names))
	for i, name := range names {
		value, ok := fields.Get(name)
		if !ok {
			return nil, fmt.Errorf("%s request has no attribute %q", r.Kind, name)
		}
		tuple[i] = value
	}
	return tuple, nil
}
