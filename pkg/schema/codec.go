package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	errEmpty        = errors.New("empty document")
	errTrailingData = errors.New("unexpected data after the schema object")
)

// Both decoders reject unknown fields.

func decodeYAML(content []byte, s *Schema) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmpty
		}
		return err
	}
	return nil
}

func decodeJSON(content []byte, s *Schema) error {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmpty
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
