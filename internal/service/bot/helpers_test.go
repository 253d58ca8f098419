package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamasit07/gomoku/backend/internal/domain"
)

type cells [][2]int

func boardWith(t *testing.T, size int, computer, human cells) *domain.Board {
	t.Helper()
	b := domain.NewBoard(size)
	for _, c := range computer {
		require.NoError(t, b.Place(c[0], c[1], domain.Computer))
	}
	for _, c := range human {
		require.NoError(t, b.Place(c[0], c[1], domain.Human))
	}
	return b
}

func pos(row, col int) domain.Position {
	return domain.Position{Row: row, Col: col}
}

// fullBoard fills a board in a pattern that contains no five for either side.
func fullBoard(size int) *domain.Board {
	b := domain.NewBoard(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := domain.Human
			if ((c/2)+r)%2 == 0 {
				p = domain.Computer
			}
			_ = b.Place(r, c, p)
		}
	}
	return b
}
