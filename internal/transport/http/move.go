package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/gomoku/backend/internal/domain"
	"github.com/iamasit07/gomoku/backend/internal/service/bot"
)

// MoveDecider is the part of the move service the handler needs.
type MoveDecider interface {
	DecideMove(ctx context.Context, grid [][]int, tier string) (*domain.Position, error)
	BoardSizes() []int
}

type MoveHandler struct {
	Moves            MoveDecider
	DefaultBoardSize int
}

func NewMoveHandler(moves MoveDecider, defaultBoardSize int) *MoveHandler {
	return &MoveHandler{Moves: moves, DefaultBoardSize: defaultBoardSize}
}

// moveRequest accepts "tier" and the older "mode" field for the difficulty.
type moveRequest struct {
	Board [][]int `json:"board" binding:"required"`
	Tier  string  `json:"tier"`
	Mode  string  `json:"mode"`
}

type moveResponse struct {
	Move *[2]int `json:"move"`
}

// AIMove answers {board, tier} with {move: [row, col]} or {move: null} on a full board.
func (h *MoveHandler) AIMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tier := req.Tier
	if tier == "" {
		tier = req.Mode
	}

	mv, err := h.Moves.DecideMove(c.Request.Context(), req.Board, tier)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	resp := moveResponse{}
	if mv != nil {
		resp.Move = &[2]int{mv.Row, mv.Col}
	}
	c.JSON(http.StatusOK, resp)
}

// Settings lists what a client may request.
func (h *MoveHandler) Settings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"boardSizes":       h.Moves.BoardSizes(),
		"tiers":            bot.Tiers,
		"defaultBoardSize": h.DefaultBoardSize,
	})
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidBoard), errors.Is(err, domain.ErrUnknownTier):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
