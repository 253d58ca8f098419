package bot

import (
	"github.com/iamasit07/gomoku/backend/internal/domain"
)

const (
	WinScore = 100000.0

	// DefenseBias scales the human's material so that blocking outranks an
	// equally valued attack.
	DefenseBias = 1.1
)

// CountWeights[k] is the value of one window holding k stones and no opponent.
var CountWeights = [domain.ToWin]float64{0, 1, 4, 8, 100}

// Evaluate scores a position from the computer's point of view.
func Evaluate(b *domain.Board) float64 {
	computer := TallyFor(b, domain.Computer)
	human := TallyFor(b, domain.Human)

	if computer.Five {
		return WinScore
	}
	if human.Five {
		return -WinScore
	}

	return weightedSum(computer) - DefenseBias*weightedSum(human)
}

func weightedSum(t Tally) float64 {
	sum := 0.0
	for k := 1; k < domain.ToWin; k++ {
		sum += float64(t.Counts[k]) * CountWeights[k]
	}
	return sum
}
