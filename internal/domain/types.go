package domain

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

type PlayerID int

const (
	Empty    PlayerID = 0
	Human    PlayerID = 1
	Computer PlayerID = 2
)

// Opponent returns the other side. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Human:
		return Computer
	case Computer:
		return Human
	}
	return Empty
}

const (
	SmallBoard = 12
	LargeBoard = 15
	ToWin      = 5
)

// Position is a 0-based (row, col) cell coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction vectors used for line scans: horizontal, vertical and both diagonals.
var Directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidBoard      Error = "invalid board"
	ErrShouldNeverHappen Error = "should never happen"
	ErrCellOccupied      Error = "cell is occupied"
	ErrOutOfBounds       Error = "position is out of bounds"
	ErrNotYourTurn       Error = "not your turn"
	ErrGameOver          Error = "game is already over"
	ErrGameNotFound      Error = "game not found"
	ErrUnknownTier       Error = "unknown difficulty"
)
