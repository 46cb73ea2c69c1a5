package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDSlice(t *testing.T) {
	ids := NewIDSlice([]ID{"carol", "alice", "bob"})
	assert.Equal(t, IDSlice{"alice", "bob", "carol"}, ids)
	assert.True(t, ids.Valid())
}

func TestValid(t *testing.T) {
	assert.False(t, IDSlice{}.Valid())
	assert.False(t, IDSlice{""}.Valid())
	assert.False(t, IDSlice{"alice", "alice"}.Valid())
	assert.False(t, IDSlice{"bob", "alice"}.Valid())
	assert.True(t, IDSlice{"alice", "bob"}.Valid())
}

func TestContains(t *testing.T) {
	ids := NewIDSlice([]ID{"alice", "bob"})
	assert.True(t, ids.Contains("alice"))
	assert.True(t, ids.Contains("bob"))
	assert.False(t, ids.Contains("carol"))
	assert.False(t, ids.Contains(""))
}

func TestRemove(t *testing.T) {
	ids := NewIDSlice([]ID{"alice", "bob"})
	assert.Equal(t, IDSlice{"bob"}, ids.Remove("alice"))
	assert.Equal(t, IDSlice{"alice", "bob"}, ids, "Remove must not modify the receiver")
}
