package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAndStore(t *testing.T) {
	c := New()

	_, ok := c.Lookup("leaderboard_L1")
	assert.False(t, ok, "empty cache should miss")

	payload := &struct{ Name string }{Name: "Spiral"}
	c.Store("level_L1", payload)

	got, ok := c.Lookup("level_L1")
	require.True(t, ok)
	assert.Same(t, payload, got, "lookup should return the stored object itself")
	assert.Equal(t, 1, c.Len())

	c.Store("level_L1", "replaced")
	got, _ = c.Lookup("level_L1")
	assert.Equal(t, "replaced", got)
	assert.Equal(t, 1, c.Len())
}
