package table

import (
	"testing"
)

func TestItemGet(t *testing.T) {
	item := Item{
		{Name: "pk", Value: []byte("1")},
		{Name: "sk", Value: []byte("a")},
		{Name: "payload", Value: []byte("hello")},
	}

	if v, ok := item.Get("sk"); !ok || string(v) != "a" {
		t.Errorf("Get(sk) = %q, %v; want a, true", v, ok)
	}
	if _, ok := item.Get("missing"); ok {
		t.Errorf("Get(missing) should not find an attribute")
	}
}

func TestExtractKeyOrder(t *testing.T) {
	req := NewPutRequest(Item{
		{Name: "sk", Value: []byte("a")},
		{Name: "pk", Value: []byte("1")},
	})

	// The tuple order follows the requested names, not the item order
	tuple, err := req.ExtractKey([]string{"pk", "sk"})
	if err != nil {
		t.Fatalf("ExtractKey failed: %v", err)
	}
	if string(tuple[0]) != "1" || string(tuple[1]) != "a" {
		t.Errorf("tuple = %q, want [1 a]", tuple)
	}
}

func TestExtractKeyVariants(t *testing.T) {
	put := NewPutRequest(Item{
		{Name: "pk", Value: []byte("1")},
		{Name: "payload", Value: []byte("x")},
	})
	del := NewDeleteRequest(Item{
		{Name: "pk", Value: []byte("1")},
	})

	putKey, err := put.ExtractKey([]string{"pk"})
	if err != nil {
		t.Fatalf("put ExtractKey failed: %v", err)
	}
	delKey, err := del.ExtractKey([]string{"pk"})
	if err != nil {
		t.Fatalf("delete ExtractKey failed: %v", err)
	}

	// Put and Delete requests compare on values only, not on the variant
	if !putKey.Equal(delKey) {
		t.Errorf("put and delete tuples for the same key should be equal")
	}
}

func TestExtractKeyMissingAttribute(t *testing.T) {
	req := NewPutRequest(Item{
		{Name: "pk", Value: []byte("1")},
	})

	if _, err := req.ExtractKey([]string{"pk", "sk"}); err == nil {
		t.Errorf("ExtractKey with a missing attribute should fail")
	}
}

func TestKeyTupleEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b KeyTuple
		want bool
	}{
		{"equal single", KeyTuple{[]byte("1")}, KeyTuple{[]byte("1")}, true},
		{"different value", KeyTuple{[]byte("1")}, KeyTuple{[]byte("2")}, false},
		{"different length", KeyTuple{[]byte("1")}, KeyTuple{[]byte("1"), []byte("a")}, false},
		{"equal composite", KeyTuple{[]byte("1"), []byte("a")}, KeyTuple{[]byte("1"), []byte("a")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
