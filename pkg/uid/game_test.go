package uid

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	a, b := GenerateGameID(), GenerateGameID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestGenerateConnID(t *testing.T) {
	id := GenerateConnID()
	assert.True(t, strings.HasPrefix(id, "conn-"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "conn-"))
	assert.NoError(t, err)
}
