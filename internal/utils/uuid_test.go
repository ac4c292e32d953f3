package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(NewUUIDGenerator().Generate()))
	assert.True(t, IsValidID(uuid.NewString()))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("not-a-uuid"))
}
