package domain

type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	LastMove      *Position
}

func NewGame(size int, first PlayerID) *Game {
	return &Game{
		Board:         NewBoard(size),
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

func (g *Game) MakeMove(player PlayerID, row, col int) error {
	if g.Status != StatusActive {
		return ErrGameOver
	}
	if player != g.CurrentPlayer {
		return ErrNotYourTurn
	}
	if err := g.Board.Place(row, col, player); err != nil {
		return err
	}

	g.MoveCount++
	g.LastMove = &Position{Row: row, Col: col}

	if CompletesFive(g.Board, row, col, player) {
		g.Status = StatusWon
		g.Winner = player
		return nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return nil
	}

	g.CurrentPlayer = player.Opponent()
	return nil
}

// Resign ends the game in favour of the other side.
func (g *Game) Resign(player PlayerID) error {
	if g.Status != StatusActive {
		return ErrGameOver
	}
	g.Status = StatusWon
	g.Winner = player.Opponent()
	return nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
