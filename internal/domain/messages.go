package domain

type ClientMessage struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
	BoardSize  int    `json:"boardSize,omitempty"`
	HumanFirst *bool  `json:"humanFirst,omitempty"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
}

type ServerMessage struct {
	Type        string  `json:"type"`
	Message     string  `json:"message,omitempty"`
	GameID      string  `json:"gameId,omitempty"`
	Opponent    string  `json:"opponent,omitempty"`
	Difficulty  string  `json:"difficulty,omitempty"`
	Row         *int    `json:"row,omitempty"`
	Col         *int    `json:"col,omitempty"`
	Player      int     `json:"player,omitempty"`
	Board       [][]int `json:"board,omitempty"`
	CurrentTurn int     `json:"currentTurn,omitempty"`
	Winner      int     `json:"winner,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}
