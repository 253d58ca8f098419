package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/gomoku/backend/internal/domain"
	"github.com/iamasit07/gomoku/backend/internal/service/bot"
)

// MoveCache is an optional store of previous decisions.
type MoveCache interface {
	Get(ctx context.Context, tier string, b *domain.Board) (*domain.Position, bool, error)
	Set(ctx context.Context, tier string, b *domain.Board, move *domain.Position) error
}

type Options struct {
	BoardSizes []int
	Engine     bot.Config
	// Timeout bounds one decision; zero means no deadline.
	Timeout time.Duration
	// Seed fixes the move-order shuffle; zero seeds every request from the clock.
	Seed uint64
}

// Service answers "what does the computer play on this board".
type Service struct {
	opts  Options
	cache MoveCache
}

// NewService builds the move service. cache may be nil.
func NewService(opts Options, cache MoveCache) *Service {
	if len(opts.BoardSizes) == 0 {
		opts.BoardSizes = []int{domain.SmallBoard, domain.LargeBoard}
	}
	return &Service{opts: opts, cache: cache}
}

func (s *Service) BoardSizes() []int {
	return s.opts.BoardSizes
}

func (s *Service) IsAllowedSize(n int) bool {
	for _, size := range s.opts.BoardSizes {
		if size == n {
			return true
		}
	}
	return false
}

// DecideMove validates a wire board and tier and returns the computer's move,
// or nil when the board has no empty cell.
func (s *Service) DecideMove(ctx context.Context, grid [][]int, tierName string) (*domain.Position, error) {
	tier, err := bot.ParseTier(tierName)
	if err != nil {
		return nil, err
	}

	board, err := domain.ParseBoard(grid)
	if err != nil {
		return nil, err
	}
	if !s.IsAllowedSize(board.Size()) {
		return nil, fmt.Errorf("%w: size %d not in %v", domain.ErrInvalidBoard, board.Size(), s.opts.BoardSizes)
	}

	return s.DecideBoard(ctx, board, tier)
}

// DecideBoard runs the engine on a private copy of board.
func (s *Service) DecideBoard(ctx context.Context, board *domain.Board, tier bot.Tier) (*domain.Position, error) {
	logger := log.With().Str("component", "move_service").Str("tier", string(tier)).Int("size", board.Size()).Logger()

	if s.cache != nil {
		mv, hit, err := s.cache.Get(ctx, string(tier), board)
		if err != nil {
			logger.Warn().Err(err).Msg("cache lookup failed")
		} else if hit {
			logger.Debug().Msg("cache hit")
			return mv, nil
		}
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	engine := bot.NewEngine(s.opts.Engine, bot.NewSeededRand(s.opts.Seed))
	start := time.Now()
	result, err := engine.BestMove(ctx, board, tier)
	if err != nil {
		logger.Error().Err(err).Msg("search failed")
		return nil, err
	}

	var move *domain.Position
	if result.Found {
		mv := result.Move
		move = &mv
	}

	logger.Info().
		Bool("found", result.Found).
		Int("nodes", result.Nodes).
		Bool("fallback", result.Fallback).
		Dur("elapsed", time.Since(start)).
		Msg("move decided")

	if s.cache != nil {
		// a deadline that cut the search short should not be remembered
		if ctx.Err() == nil {
			if err := s.cache.Set(context.WithoutCancel(ctx), string(tier), board, move); err != nil {
				logger.Warn().Err(err).Msg("cache store failed")
			}
		}
	}

	return move, nil
}
