package payloaddomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawDocument_Int64(t *testing.T) {
	doc := RawDocument{
		"from_json":   float64(45000),
		"fractional":  12.6,
		"as_string":   "8999",
		"as_int":      250,
		"null":        nil,
		"not_numeric": "abc",
		"object":      map[string]any{"amount": 1},
	}

	assert.Equal(t, int64(45000), doc.Int64("from_json"))
	assert.Equal(t, int64(13), doc.Int64("fractional"))
	assert.Equal(t, int64(8999), doc.Int64("as_string"))
	assert.Equal(t, int64(250), doc.Int64("as_int"))
	assert.Equal(t, int64(0), doc.Int64("null"))
	assert.Equal(t, int64(0), doc.Int64("missing"))
	assert.Equal(t, int64(0), doc.Int64("not_numeric"))
	assert.Equal(t, int64(0), doc.Int64("object"))
}

func TestRawDocument_String(t *testing.T) {
	doc := RawDocument{"id": float64(42), "email": "ana@example.com"}

	assert.Equal(t, "42", doc.String("id"))
	assert.Equal(t, "ana@example.com", doc.String("email"))
	assert.Equal(t, "", doc.String("missing"))
	assert.True(t, doc.Has("id"))
	assert.False(t, doc.Has("missing"))
}
