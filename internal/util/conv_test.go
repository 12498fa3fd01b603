package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = ParseID("0")
	assert.False(t, ok)

	_, ok = ParseID("")
	assert.False(t, ok)

	_, ok = ParseID("abc")
	assert.False(t, ok)

	_, ok = ParseID("-5")
	assert.False(t, ok)

	_, ok = ParseID("3.7")
	assert.False(t, ok)
}
