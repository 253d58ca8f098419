package bot

import (
	"github.com/iamasit07/gomoku/backend/internal/domain"
	"golang.org/x/exp/slices"
)

const (
	// capping weights for stones found around a candidate
	computerStoneWeight = 2
	humanStoneWeight    = 1
	capReach            = domain.ToWin - 1
)

// NearbyMoves returns empty cells within Chebyshev distance radius of any
// stone, in scan order. With no stone on the board every empty cell qualifies.
func NearbyMoves(b *domain.Board, radius int) []domain.Position {
	moves := []domain.Position{}
	n := b.Size()

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.At(r, c) == domain.Empty && hasNeighbour(b, r, c, radius) {
				moves = append(moves, domain.Position{Row: r, Col: c})
			}
		}
	}

	if len(moves) == 0 {
		return b.EmptyCells()
	}
	return moves
}

func hasNeighbour(b *domain.Board, row, col, radius int) bool {
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if b.InBounds(r, c) && b.At(r, c) != domain.Empty {
				return true
			}
		}
	}
	return false
}

// CapMoves keeps the limit highest-scoring moves. Scores count stones within
// four cells along each direction, computer stones weighing double. Equal
// scores keep their input order. A limit of zero or less disables capping.
func CapMoves(b *domain.Board, moves []domain.Position, limit int) []domain.Position {
	if limit <= 0 || len(moves) <= limit {
		return moves
	}

	type scoredMove struct {
		pos   domain.Position
		score int
	}

	scored := make([]scoredMove, len(moves))
	for i, mv := range moves {
		scored[i] = scoredMove{pos: mv, score: proximityScore(b, mv)}
	}

	slices.SortStableFunc(scored, func(x, y scoredMove) int {
		return y.score - x.score
	})

	capped := make([]domain.Position, limit)
	for i := range capped {
		capped[i] = scored[i].pos
	}
	return capped
}

func proximityScore(b *domain.Board, mv domain.Position) int {
	score := 0
	for _, d := range domain.Directions {
		for k := -capReach; k <= capReach; k++ {
			r, c := mv.Row+k*d[0], mv.Col+k*d[1]
			if !b.InBounds(r, c) {
				continue
			}
			switch b.At(r, c) {
			case domain.Computer:
				score += computerStoneWeight
			case domain.Human:
				score += humanStoneWeight
			}
		}
	}
	return score
}

// GenerateMoves produces the non-tactical candidate set: proximity filter,
// cap, then a shuffle when the engine has a random source.
func (e *Engine) GenerateMoves(b *domain.Board) []domain.Position {
	moves := NearbyMoves(b, e.cfg.NearRadius)
	moves = CapMoves(b, moves, e.cfg.MoveCap)

	if e.rng != nil {
		e.rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}
	return moves
}

// candidates returns the move list for a node. Critical moves replace the
// generated set entirely and keep their scan order.
func (e *Engine) candidates(b *domain.Board, maximizing bool) []domain.Position {
	if e.cfg.CriticalShortcut {
		side := domain.Computer
		if e.cfg.ThreatsForSideToMove && !maximizing {
			side = domain.Human
		}
		if critical := CriticalMoves(b, side); len(critical) > 0 {
			return critical
		}
	}
	return e.GenerateMoves(b)
}
