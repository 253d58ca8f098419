package domain

// HasFive reports whether player owns a run of at least five stones in any
// direction. Runs are measured only from their first stone, which finds every
// run that a scan from every stone would find.
func HasFive(b *Board, player PlayerID) bool {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r][c] != player {
				continue
			}
			for _, d := range Directions {
				pr, pc := r-d[0], c-d[1]
				if b.InBounds(pr, pc) && b.cells[pr][pc] == player {
					continue
				}
				if 1+b.CountInDirection(r, c, d[0], d[1], player, ToWin-1) >= ToWin {
					return true
				}
			}
		}
	}
	return false
}

// CompletesFive reports whether a stone of player at (row, col) is part of a
// run of five or more along any direction. The cell itself is counted as
// player's regardless of its current content.
func CompletesFive(b *Board, row, col int, player PlayerID) bool {
	return LongestRunThrough(b, row, col, player, ToWin-1) >= ToWin
}

// LongestRunThrough returns the longest run through (row, col) over the four
// directions, counting at most reach stones on each side of the cell.
func LongestRunThrough(b *Board, row, col int, player PlayerID, reach int) int {
	best := 0
	for _, d := range Directions {
		run := 1 +
			b.CountInDirection(row, col, d[0], d[1], player, reach) +
			b.CountInDirection(row, col, -d[0], -d[1], player, reach)
		if run > best {
			best = run
		}
	}
	return best
}
