package schema_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/schema"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestDecodeDocument(t *testing.T) {
	t.Run("orders declared properties first", func(t *testing.T) {
		doc, err := schema.DecodeDocument(
			strings.NewReader(`{"zeta": 1, "email": "a@b.co", "name": "Al", "alpha": true}`),
			"user", []string{"id", "name", "email"},
		)
		require.NoError(t, err)

		assert.Equal(t, "user", doc.TypeName())
		assert.Equal(t, []string{"id", "name", "email", "alpha", "zeta"}, doc.Properties())

		_, ok := doc.Property("id")
		assert.False(t, ok)
	})

	t.Run("numbers stay exact", func(t *testing.T) {
		doc, err := schema.DecodeDocument(strings.NewReader(`{"id": 9007199254740993}`), "user", nil)
		require.NoError(t, err)

		v, ok := doc.Property("id")
		require.True(t, ok)
		assert.Equal(t, json.Number("9007199254740993"), v)
	})

	t.Run("null is present", func(t *testing.T) {
		doc, err := schema.DecodeDocument(strings.NewReader(`{"name": null}`), "user", nil)
		require.NoError(t, err)

		v, ok := doc.Property("name")
		assert.True(t, ok)
		assert.Nil(t, v)

		_, ok = doc.Property("email")
		assert.False(t, ok)
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, body := range []string{``, `[1, 2]`, `"text"`, `{"a": `, `{} {}`, `{"a": 1}}`, `{"a": 1}]`, `{"a": 1} x`} {
			_, err := schema.DecodeDocument(strings.NewReader(body), "user", nil)
			assert.ErrorIs(t, err, schema.ErrInvalidDocument, "body %q", body)
		}
	})

	t.Run("trailing whitespace is allowed", func(t *testing.T) {
		doc, err := schema.DecodeDocument(strings.NewReader("{\"name\": \"Al\"}\n\t "), "user", nil)
		require.NoError(t, err)
		v, _ := doc.Property("name")
		assert.Equal(t, "Al", v)
	})

	t.Run("marshals values", func(t *testing.T) {
		doc := schema.NewDocument("user", map[string]any{"name": "Al"}, nil)
		data, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Al"}`, string(data))
	})
}

func TestDocumentValidation(t *testing.T) {
	s, err := schema.Parse(context.Background(), "rules.yaml", []byte(rulesYAML))
	require.NoError(t, err)
	reg := validator.NewRegistry()
	require.NoError(t, s.Apply(reg))
	v := validator.New(validator.WithRegistry(reg))

	decode := func(t *testing.T, body string) *schema.Document {
		t.Helper()
		doc, err := schema.DecodeDocument(strings.NewReader(body), "user", reg.Properties("user"))
		require.NoError(t, err)
		return doc
	}

	t.Run("valid document", func(t *testing.T) {
		res := v.Validate(decode(t, `{
			"id": "123e4567-e89b-12d3-a456-426614174000",
			"name": "Al",
			"email": "a@b.co",
			"age": 30,
			"slug": "al-1"
		}`))
		assert.True(t, res.Valid, "%v", res.Errors)
	})

	t.Run("errors follow registry order", func(t *testing.T) {
		res := v.Validate(decode(t, `{"slug": "Not Valid", "age": 12.5, "email": "nope", "name": ""}`))
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"id", "name", "email", "age", "slug"}, res.Errors.Fields())
		assert.Equal(t, []string{"enter a valid email"}, res.Errors.Get("email"))
		assert.Equal(t, []string{"age must be between 18 and 120"}, res.Errors.Get("age"))
	})

	t.Run("json number as text fails length rules", func(t *testing.T) {
		res := v.Validate(decode(t, `{"id": "123e4567-e89b-12d3-a456-426614174000", "name": 42, "email": "a@b.co", "age": 40, "slug": "x"}`))
		require.False(t, res.Valid)
		assert.Equal(t, []string{"name"}, res.Errors.Fields())
	})
}
