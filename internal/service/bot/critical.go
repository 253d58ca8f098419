package bot

import (
	"github.com/iamasit07/gomoku/backend/internal/domain"
)

// DangerRun is the opponent run length, including the hypothetical stone,
// that marks a cell as needing defence.
const DangerRun = 3

// CriticalMoves finds tactical cells for side, in scan order.
//
// A cell where side completes five is returned alone and ends the scan.
// Otherwise the result holds every cell where the opponent would complete
// five and every cell where an opponent stone would join a run of DangerRun
// or more. The board is only read.
func CriticalMoves(b *domain.Board, side domain.PlayerID) []domain.Position {
	opponent := side.Opponent()
	critical := []domain.Position{}

	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.At(r, c) != domain.Empty {
				continue
			}

			if domain.CompletesFive(b, r, c, side) {
				return []domain.Position{{Row: r, Col: c}}
			}

			// a forced block is also a run of at least DangerRun
			if domain.LongestRunThrough(b, r, c, opponent, domain.ToWin-1) >= DangerRun {
				critical = append(critical, domain.Position{Row: r, Col: c})
			}
		}
	}

	return critical
}
