package bot

import (
	"github.com/iamasit07/gomoku/backend/internal/domain"
)

// OpponentWeight scales the opponent's line score in the fallback scan.
const OpponentWeight = 0.9

// HeuristicMove picks, without lookahead, the empty cell whose surrounding
// lines score highest for player plus OpponentWeight times the opponent.
// Each line is the up to nine cells within four steps of the candidate.
// Ties go to the first cell in scan order.
func HeuristicMove(b *domain.Board, player domain.PlayerID) (domain.Position, bool) {
	opponent := player.Opponent()
	best := domain.Position{}
	bestScore := -1.0
	found := false

	segment := make([]domain.PlayerID, 0, 2*capReach+1)
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.At(r, c) != domain.Empty {
				continue
			}

			score := 0.0
			for _, d := range domain.Directions {
				segment = segment[:0]
				for k := -capReach; k <= capReach; k++ {
					rr, cc := r+k*d[0], c+k*d[1]
					if b.InBounds(rr, cc) {
						segment = append(segment, b.At(rr, cc))
					}
				}
				score += scoreSegment(segment, player)
				score += scoreSegment(segment, opponent) * OpponentWeight
			}

			if score > bestScore {
				bestScore = score
				best = domain.Position{Row: r, Col: c}
				found = true
			}
		}
	}

	return best, found
}

// scoreSegment is count² plus a 2·count bonus when the segment holds no
// opponent stone.
func scoreSegment(segment []domain.PlayerID, player domain.PlayerID) float64 {
	count, empty := 0, 0
	for _, p := range segment {
		switch p {
		case player:
			count++
		case domain.Empty:
			empty++
		}
	}
	if count == 0 {
		return 0
	}

	score := count * count
	if empty == len(segment)-count {
		score += count * 2
	}
	return float64(score)
}
