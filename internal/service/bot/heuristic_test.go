package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamasit07/gomoku/backend/internal/domain"
)

func TestHeuristicMove(t *testing.T) {
	t.Run("empty board picks the first cell", func(t *testing.T) {
		mv, ok := HeuristicMove(domain.NewBoard(domain.SmallBoard), domain.Computer)
		assert.True(t, ok)
		assert.Equal(t, pos(0, 0), mv)
	})

	t.Run("extends its own four", func(t *testing.T) {
		b := boardWith(t, domain.SmallBoard, cells{{5, 5}, {5, 6}, {5, 7}, {5, 8}}, nil)
		mv, ok := HeuristicMove(b, domain.Computer)
		assert.True(t, ok)
		assert.Equal(t, pos(5, 4), mv)
	})

	t.Run("full board has no move", func(t *testing.T) {
		_, ok := HeuristicMove(fullBoard(domain.SmallBoard), domain.Computer)
		assert.False(t, ok)
	})
}

func TestScoreSegment(t *testing.T) {
	const (
		E = domain.Empty
		H = domain.Human
		C = domain.Computer
	)

	assert.Zero(t, scoreSegment([]domain.PlayerID{E, E, E}, C))
	assert.Equal(t, 3.0, scoreSegment([]domain.PlayerID{E, C, E}, C))
	assert.Equal(t, 4.0, scoreSegment([]domain.PlayerID{C, H, C}, C))
	assert.Equal(t, 8.0, scoreSegment([]domain.PlayerID{C, C, E, E}, C))
}
