package bot

import (
	"context"
	"fmt"
	"math"

	"github.com/iamasit07/gomoku/backend/internal/domain"
)

// SearchResult is the outcome of a search. Found is false only when no
// candidate move existed at the root.
type SearchResult struct {
	Move     domain.Position
	Found    bool
	Score    float64
	Nodes    int
	Fallback bool
}

type searcher struct {
	engine *Engine
	ctx    context.Context
	board  *domain.Board
	nodes  int
}

// Search runs depth-limited minimax with alpha-beta pruning, the computer
// maximizing. The board is used as scratch space and is back in its original
// state when Search returns, error or not.
func (e *Engine) Search(ctx context.Context, board *domain.Board, depth int) (SearchResult, error) {
	s := &searcher{engine: e, ctx: ctx, board: board}
	result, err := s.minimax(depth, true, math.Inf(-1), math.Inf(1))
	result.Nodes = s.nodes
	return result, err
}

// expired reports whether the node or time budget is spent. An expired node
// is scored statically so the search unwinds with the best move found so far.
func (s *searcher) expired() bool {
	if limit := s.engine.cfg.MaxNodes; limit > 0 && s.nodes > limit {
		return true
	}
	return s.ctx.Err() != nil
}

func (s *searcher) minimax(depth int, maximizing bool, alpha, beta float64) (SearchResult, error) {
	s.nodes++

	if domain.HasFive(s.board, domain.Computer) {
		return SearchResult{Score: WinScore}, nil
	}
	if domain.HasFive(s.board, domain.Human) {
		return SearchResult{Score: -WinScore}, nil
	}
	if depth <= 0 || s.expired() {
		return SearchResult{Score: Evaluate(s.board)}, nil
	}

	moves := s.engine.candidates(s.board, maximizing)
	if len(moves) == 0 {
		return SearchResult{Score: 0}, nil
	}

	if maximizing {
		best := SearchResult{Score: math.Inf(-1)}
		for _, mv := range moves {
			child, err := s.try(mv, domain.Computer, depth, false, alpha, beta)
			if err != nil {
				return SearchResult{}, err
			}

			if child.Score > best.Score {
				best = SearchResult{Move: mv, Found: true, Score: child.Score}
			}

			alpha = math.Max(alpha, child.Score)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return best, nil
	}

	best := SearchResult{Score: math.Inf(1)}
	for _, mv := range moves {
		child, err := s.try(mv, domain.Human, depth, true, alpha, beta)
		if err != nil {
			return SearchResult{}, err
		}

		if child.Score < best.Score {
			best = SearchResult{Move: mv, Found: true, Score: child.Score}
		}

		beta = math.Min(beta, child.Score)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return best, nil
}

// try places player's stone at mv, searches the child and always clears the
// cell again before returning.
func (s *searcher) try(mv domain.Position, player domain.PlayerID, depth int, maximizing bool, alpha, beta float64) (SearchResult, error) {
	if err := s.board.Place(mv.Row, mv.Col, player); err != nil {
		return SearchResult{}, fmt.Errorf("%w: %w", domain.ErrShouldNeverHappen, err)
	}
	defer s.board.Undo(mv.Row, mv.Col)

	return s.minimax(depth-1, maximizing, alpha, beta)
}
