package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/iamasit07/gomoku/backend/internal/domain"
)

// Config is the single tuning surface for the engine.
type Config struct {
	NearRadius       int
	MoveCap          int
	CriticalShortcut bool

	// ThreatsForSideToMove runs critical-move detection for the side to move
	// at minimizing nodes. When false, threats are always read from the
	// computer's side, which the shallow tiers are tuned against.
	ThreatsForSideToMove bool

	// MaxNodes bounds the nodes visited by one search; zero means no bound.
	MaxNodes int

	Policies map[Tier]Policy
}

func DefaultConfig() Config {
	return Config{
		NearRadius:       2,
		MoveCap:          20,
		CriticalShortcut: true,
		Policies:         DefaultPolicies,
	}
}

// Engine chooses moves for the computer. It is not safe for concurrent use:
// build one per request, each with its own random source.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// NewEngine returns an engine. A nil rng keeps candidate order deterministic.
func NewEngine(cfg Config, rng *rand.Rand) *Engine {
	if cfg.Policies == nil {
		cfg.Policies = DefaultPolicies
	}
	return &Engine{cfg: cfg, rng: rng}
}

// NewSeededRand returns a random source for NewEngine; seed 0 seeds from the clock.
func NewSeededRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// BestMove decides the computer's move for tier. The board is not modified.
func (e *Engine) BestMove(ctx context.Context, board *domain.Board, tier Tier) (SearchResult, error) {
	policy, ok := e.cfg.Policies[tier]
	if !ok {
		return SearchResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}

	start := time.Now()
	result, err := e.Search(ctx, board.Copy(), policy.Depth)
	if err != nil {
		return SearchResult{}, err
	}

	if !result.Found && policy.Fallback {
		if mv, ok := HeuristicMove(board, domain.Computer); ok {
			result.Move = mv
			result.Found = true
			result.Fallback = true
		}
	}

	log.Debug().
		Str("component", "bot").
		Str("tier", string(tier)).
		Int("depth", policy.Depth).
		Int("nodes", result.Nodes).
		Float64("score", result.Score).
		Bool("found", result.Found).
		Bool("fallback", result.Fallback).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")

	return result, nil
}
