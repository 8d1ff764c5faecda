package table

// Field is a single named attribute of a table row.
type Field struct {
	Name  string `json:"name"`
	Value []byte `json:"value"`
}

// Item represents a table row (or a row key) as an ordered sequence of
// attributes. The order is the order in which the caller defined the
// attributes and is preserved through serialization.
type Item []Field

// NewItem creates an Item from alternating name/value pairs. It is a
// convenience constructor mainly used by the CLI and by tests.
func NewItem(pairs ...Field) Item {
	return Item(pairs)
}

// Get returns the value of the attribute with the given name. The boolean
// return value indicates whether the attribute exists.
func (it Item) Get(name string) ([]byte, bool) {
	for _, f := range it {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the attribute names of the item in order.
func (it Item) Names() []string {
	names := make([]string, len(it))
	for i, f := range it {
		names[i] = f.Name
	}
	return names
}
