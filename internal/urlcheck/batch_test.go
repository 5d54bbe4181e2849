package urlcheck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateManyIsolatesFailures(t *testing.T) {
	v := New()

	items := v.ValidateMany([]string{
		"https://good.com",
		"javascript:x",
		"https://good2.com",
	})

	require.Len(t, items, 3)

	assert.Equal(t, "https://good.com", items[0].URL)
	require.NotNil(t, items[0].Result)
	assert.Nil(t, items[0].Error)

	assert.Equal(t, "javascript:x", items[1].URL)
	assert.Nil(t, items[1].Result)
	require.NotNil(t, items[1].Error)
	assert.Equal(t, CodeProtocolNotAllowed, items[1].Error.Code)

	assert.Equal(t, "https://good2.com", items[2].URL)
	require.NotNil(t, items[2].Result)
	assert.Nil(t, items[2].Error)
}

func TestValidateManyPreservesOrder(t *testing.T) {
	v := New().WithWorkers(8)

	inputs := make([]string, 200)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("https://host-%03d.example.com", i)
	}

	items := v.ValidateMany(inputs)
	require.Len(t, items, len(inputs))
	for i, item := range items {
		assert.Equal(t, inputs[i], item.URL)
		require.NotNil(t, item.Result, "item %d", i)
		assert.Equal(t, fmt.Sprintf("https://host-%03d.example.com", i), item.Result.Sanitized)
	}
}

func TestValidateManyEmpty(t *testing.T) {
	v := New()

	items := v.ValidateMany(nil)
	assert.NotNil(t, items)
	assert.Len(t, items, 0)

	items = v.ValidateMany([]string{})
	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestValidateManyExactlyOneOutcome(t *testing.T) {
	v := New()

	items := v.ValidateMany([]string{"https://ok.com", "", "ftp://x.com", "example.com"})
	for i, item := range items {
		oneSet := (item.Result != nil) != (item.Error != nil)
		assert.True(t, oneSet, "item %d must have exactly one of result/error", i)
	}
}

func TestValidateBatchRejectsNonArrays(t *testing.T) {
	v := New()

	for _, input := range []interface{}{"https://example.com", 7, map[string]interface{}{}, nil} {
		items, verr := v.ValidateBatch(input)
		assert.Nil(t, items)
		require.NotNil(t, verr)
		assert.Equal(t, CodeInvalidType, verr.Code)
		assert.Contains(t, verr.Message, "must be an array")
	}
}

func TestValidateBatchLooseElements(t *testing.T) {
	v := New()

	items, verr := v.ValidateBatch([]interface{}{"https://example.com", 42, "example.com"})
	require.Nil(t, verr)
	require.Len(t, items, 3)

	require.NotNil(t, items[0].Result)
	require.NotNil(t, items[1].Error)
	assert.Equal(t, CodeInvalidType, items[1].Error.Code)
	require.NotNil(t, items[2].Result)
	assert.Equal(t, "https://example.com", items[2].Result.Sanitized)
}
