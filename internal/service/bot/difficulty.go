package bot

import (
	"fmt"
	"strings"

	"github.com/iamasit07/gomoku/backend/internal/domain"
)

type Tier string

const (
	Easy   Tier = "easy"
	Medium Tier = "medium"
	Hard   Tier = "hard"
)

var Tiers = []Tier{Easy, Medium, Hard}

// Policy is the search depth for a tier and whether an empty search result
// falls back to HeuristicMove.
type Policy struct {
	Depth    int
	Fallback bool
}

// Easy is a one-ply minimax, never a random move. Every tier keeps the
// fallback so a move is returned whenever an empty cell exists.
var DefaultPolicies = map[Tier]Policy{
	Easy:   {Depth: 1, Fallback: true},
	Medium: {Depth: 2, Fallback: true},
	Hard:   {Depth: 3, Fallback: true},
}

// ParseTier accepts tier names case-insensitively. An empty name means Easy.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case "", Easy:
		return Easy, nil
	case Medium:
		return Medium, nil
	case Hard:
		return Hard, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownTier, s)
}
