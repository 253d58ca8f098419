package bot

import (
	"github.com/iamasit07/gomoku/backend/internal/domain"
)

// WindowClass classifies a five-cell window from one player's point of view.
// Count classes share their value with the stone count, so Count(k) == WindowClass(k).
type WindowClass int

const (
	Blocked   WindowClass = -1
	OpenEmpty WindowClass = 0
	Count1    WindowClass = 1
	Count2    WindowClass = 2
	Count3    WindowClass = 3
	Count4    WindowClass = 4
	Five      WindowClass = 5
)

type Window [domain.ToWin]domain.PlayerID

// ClassifyWindow checks for the opponent before counting anything.
func ClassifyWindow(w *Window, player domain.PlayerID) WindowClass {
	opponent := player.Opponent()
	count := 0
	for _, p := range w {
		if p == opponent {
			return Blocked
		}
		if p == player {
			count++
		}
	}
	return WindowClass(count)
}

// Tally counts window classes for one player across the whole board.
// Five is kept as a flag only.
type Tally struct {
	Blocked   int
	OpenEmpty int
	Counts    [domain.ToWin]int // Counts[k] for k in 1..4; index 0 unused
	Five      bool
}

func (t *Tally) add(class WindowClass) {
	switch {
	case class == Blocked:
		t.Blocked++
	case class == OpenEmpty:
		t.OpenEmpty++
	case class == Five:
		t.Five = true
	default:
		t.Counts[class]++
	}
}

// TallyFor classifies every window on the board for player.
func TallyFor(b *domain.Board, player domain.PlayerID) Tally {
	var t Tally
	ForEachWindow(b, func(w *Window) {
		t.add(ClassifyWindow(w, player))
	})
	return t
}

// ForEachWindow walks every maximal line in each of the four directions and
// slides a five-cell window along it. Lines shorter than five cells yield nothing.
func ForEachWindow(b *domain.Board, fn func(w *Window)) {
	n := b.Size()
	line := make([]domain.PlayerID, 0, n)
	var w Window

	for _, d := range domain.Directions {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				// only cells on the entry edge start a line
				if b.InBounds(r-d[0], c-d[1]) {
					continue
				}

				line = line[:0]
				for rr, cc := r, c; b.InBounds(rr, cc); rr, cc = rr+d[0], cc+d[1] {
					line = append(line, b.At(rr, cc))
				}

				for start := 0; start+domain.ToWin <= len(line); start++ {
					copy(w[:], line[start:start+domain.ToWin])
					fn(&w)
				}
			}
		}
	}
}
