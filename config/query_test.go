package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	c := NewFromMap(map[string]any{
		"prefix": map[string]any{
			"function": "jaxon_",
			"class":    "Jaxon.",
		},
	})

	got, err := c.Query(context.Background(), ".prefix.function")
	assert.NoError(t, err)
	assert.Equal(t, "jaxon_", got)
}

func TestQueryKeys(t *testing.T) {
	c := NewFromMap(map[string]any{
		"prefix": map[string]any{
			"function": "jaxon_",
			"class":    "Jaxon.",
		},
	})

	got, err := c.Query(context.Background(), ".prefix | keys")
	assert.NoError(t, err)
	assert.EqualValues(t, []any{"class", "function"}, got)
}

func TestQueryParseError(t *testing.T) {
	c := New()

	_, err := c.Query(context.Background(), ".prefix |")
	assert.Error(t, err)
}

func TestQueryNoResult(t *testing.T) {
	c := New()

	got, err := c.Query(context.Background(), "empty")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
