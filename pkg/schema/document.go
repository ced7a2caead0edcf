package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Document is a decoded JSON object validated under a schema type name.
// It implements validator.Object and validator.Typed.
type Document struct {
	typeName string
	order    []string
	values   map[string]any
}

// NewDocument wraps values as a document of typeName. Properties lists
// every declared name first, present or not, then the remaining keys sorted.
func NewDocument(typeName string, values map[string]any, declared []string) *Document {
	if values == nil {
		values = make(map[string]any)
	}

	order := make([]string, 0, len(declared)+len(values))
	for _, name := range declared {
		if !slices.Contains(order, name) {
			order = append(order, name)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if !slices.Contains(order, name) {
			order = append(order, name)
		}
	}
	return &Document{typeName: typeName, order: order, values: values}
}

// DecodeDocument reads one JSON object from r. Numbers are kept as
// json.Number so integers keep their exact value.
func DecodeDocument(r io.Reader, typeName string, declared []string) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidDocument)
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	values, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", ErrInvalidDocument, raw)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the object", ErrInvalidDocument)
	}
	return NewDocument(typeName, values, declared), nil
}

func (d *Document) TypeName() string { return d.typeName }

func (d *Document) Properties() []string { return slices.Clone(d.order) }

// Property returns the value of name and whether the document has it.
// A JSON null is present with a nil value.
func (d *Document) Property(name string) (any, bool) {
	v, ok := d.values[name]
	return v, ok
}

// MarshalJSON renders the document values.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.values)
}
