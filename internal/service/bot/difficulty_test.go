package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/gomoku/backend/internal/domain"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"easy", Easy},
		{"", Easy},
		{"Medium", Medium},
		{" HARD ", Hard},
	}
	for _, tt := range tests {
		got, err := ParseTier(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseTier("impossible")
	assert.ErrorIs(t, err, domain.ErrUnknownTier)
}

func TestDefaultPolicies(t *testing.T) {
	assert.Equal(t, 1, DefaultPolicies[Easy].Depth)
	assert.Equal(t, 2, DefaultPolicies[Medium].Depth)
	assert.Equal(t, 3, DefaultPolicies[Hard].Depth)
	for _, tier := range Tiers {
		assert.True(t, DefaultPolicies[tier].Fallback, string(tier))
	}
}
