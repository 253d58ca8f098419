package game

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/gomoku/backend/internal/domain"
	"github.com/iamasit07/gomoku/backend/internal/service/bot"
	"github.com/iamasit07/gomoku/backend/pkg/uid"
)

// Notifier delivers server messages to one websocket connection.
type Notifier interface {
	SendMessage(connID string, message domain.ServerMessage) error
}

// GameSession is one live game between a connection and the computer.
type GameSession struct {
	GameID     string
	ConnID     string
	Difficulty bot.Tier
	Game       *domain.Game
	Reason     string
	CreatedAt  time.Time
	FinishedAt time.Time
	mu         sync.Mutex

	// unix nanoseconds; read by the idle sweep without taking mu
	lastActivity atomic.Int64
}

func (gs *GameSession) LastActivity() time.Time {
	return time.Unix(0, gs.lastActivity.Load())
}

// Touch records activity at t.
func (gs *GameSession) Touch(t time.Time) {
	gs.lastActivity.Store(t.UnixNano())
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session    map[string]*GameSession // gameID → GameSession
	ConnToGame map[string]string       // connID → gameID
	mu         sync.RWMutex
	moves      *Service
}

func NewSessionManager(moves *Service) *SessionManager {
	return &SessionManager{
		Session:    make(map[string]*GameSession),
		ConnToGame: make(map[string]string),
		moves:      moves,
	}
}

// StartGame replaces any game the connection already has with a new one and
// plays the computer's opening move when the computer starts.
func (sm *SessionManager) StartGame(ctx context.Context, connID, difficulty string, size int, humanFirst bool, conn Notifier) (*GameSession, error) {
	tier, err := bot.ParseTier(difficulty)
	if err != nil {
		return nil, err
	}
	if !sm.moves.IsAllowedSize(size) {
		return nil, fmt.Errorf("%w: size %d not in %v", domain.ErrInvalidBoard, size, sm.moves.BoardSizes())
	}

	sm.RemoveByConnID(connID)

	first := domain.Computer
	if humanFirst {
		first = domain.Human
	}

	now := time.Now()
	gs := &GameSession{
		GameID:     uid.GenerateGameID(),
		ConnID:     connID,
		Difficulty: tier,
		Game:       domain.NewGame(size, first),
		CreatedAt:  now,
	}
	gs.Touch(now)

	sm.mu.Lock()
	sm.Session[gs.GameID] = gs
	sm.ConnToGame[connID] = gs.GameID
	sm.mu.Unlock()

	log.Info().Str("component", "session").Str("game_id", gs.GameID).Str("conn_id", connID).
		Str("tier", string(tier)).Int("size", size).Bool("human_first", humanFirst).Msg("game created")

	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.send(conn, domain.ServerMessage{
		Type:        "game_start",
		GameID:      gs.GameID,
		Opponent:    domain.GetBotName(string(tier)),
		Difficulty:  string(tier),
		Board:       gs.Game.Board.Grid(),
		CurrentTurn: int(gs.Game.CurrentPlayer),
	})

	if !humanFirst {
		if err := gs.playComputer(ctx, sm.moves, conn); err != nil {
			return gs, err
		}
	}
	return gs, nil
}

func (sm *SessionManager) GetSessionByConnID(connID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	gameID, exists := sm.ConnToGame[connID]
	if !exists {
		return nil, false
	}

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

// RemoveByConnID drops the connection's game, if any.
func (sm *SessionManager) RemoveByConnID(connID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if gameID, exists := sm.ConnToGame[connID]; exists {
		_ = sm.removeSessionLocked(gameID)
	}
}

// removeSessionLocked removes session from maps without acquiring lock (caller must hold it)
func (sm *SessionManager) removeSessionLocked(gameID string) error {
	session, exists := sm.Session[gameID]
	if !exists {
		return domain.ErrGameNotFound
	}

	log.Debug().Str("component", "session").Str("game_id", gameID).Msg("removing session")

	if sm.ConnToGame[session.ConnID] == gameID {
		delete(sm.ConnToGame, session.ConnID)
	}
	delete(sm.Session, gameID)

	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// CleanupIdleSessions drops sessions without activity for longer than idle
// and returns how many were removed. Session locks are never taken, so a
// search in progress does not hold up the sweep.
func (sm *SessionManager) CleanupIdleSessions(idle time.Duration) int {
	sm.mu.RLock()
	sessions := make(map[string]*GameSession, len(sm.Session))
	for gameID, session := range sm.Session {
		sessions[gameID] = session
	}
	sm.mu.RUnlock()

	now := time.Now()
	stale := []string{}
	for gameID, session := range sessions {
		if now.Sub(session.LastActivity()) > idle {
			stale = append(stale, gameID)
		}
	}
	if len(stale) == 0 {
		return 0
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	for _, gameID := range stale {
		// the game may have been replaced or touched since the snapshot
		session, exists := sm.Session[gameID]
		if !exists || session != sessions[gameID] || now.Sub(session.LastActivity()) <= idle {
			continue
		}
		_ = sm.removeSessionLocked(gameID)
		count++
	}

	if count > 0 {
		log.Info().Str("component", "session").Int("removed", count).Msg("idle sessions cleaned up")
	}
	return count
}

// HandleMove plays the human's stone and, if the game goes on, the computer's reply.
func (sm *SessionManager) HandleMove(ctx context.Context, connID string, row, col int, conn Notifier) error {
	gs, exists := sm.GetSessionByConnID(connID)
	if !exists {
		return domain.ErrGameNotFound
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if err := gs.play(domain.Human, row, col, conn); err != nil {
		return err
	}
	if gs.Game.IsFinished() {
		return nil
	}
	return gs.playComputer(ctx, sm.moves, conn)
}

// Resign ends the connection's game as a computer win.
func (sm *SessionManager) Resign(connID string, conn Notifier) error {
	gs, exists := sm.GetSessionByConnID(connID)
	if !exists {
		return domain.ErrGameNotFound
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	if err := gs.Game.Resign(domain.Human); err != nil {
		return err
	}
	gs.finish("resign", conn)
	return nil
}

func (gs *GameSession) playComputer(ctx context.Context, moves *Service, conn Notifier) error {
	mv, err := moves.DecideBoard(ctx, gs.Game.Board, gs.Difficulty)
	if err != nil {
		return err
	}
	if mv == nil {
		// MakeMove ends the game on a full board, so an active game always has a cell
		return fmt.Errorf("%w: no computer move on an active game", domain.ErrShouldNeverHappen)
	}
	return gs.play(domain.Computer, mv.Row, mv.Col, conn)
}

// play applies a move and notifies the connection. Caller holds gs.mu.
func (gs *GameSession) play(player domain.PlayerID, row, col int, conn Notifier) error {
	if err := gs.Game.MakeMove(player, row, col); err != nil {
		return err
	}
	gs.Touch(time.Now())

	r, c := row, col
	gs.send(conn, domain.ServerMessage{
		Type:        "move_made",
		GameID:      gs.GameID,
		Row:         &r,
		Col:         &c,
		Player:      int(player),
		Board:       gs.Game.Board.Grid(),
		CurrentTurn: int(gs.Game.CurrentPlayer),
	})

	switch gs.Game.Status {
	case domain.StatusWon:
		gs.finish("five_in_a_row", conn)
	case domain.StatusDraw:
		gs.finish("board_full", conn)
	}
	return nil
}

func (gs *GameSession) finish(reason string, conn Notifier) {
	gs.Reason = reason
	gs.FinishedAt = time.Now()

	gs.send(conn, domain.ServerMessage{
		Type:   "game_over",
		GameID: gs.GameID,
		Winner: int(gs.Game.Winner),
		Reason: reason,
		Board:  gs.Game.Board.Grid(),
	})

	log.Info().Str("component", "session").Str("game_id", gs.GameID).Int("winner", int(gs.Game.Winner)).
		Str("reason", reason).Int("moves", gs.Game.MoveCount).Msg("game over")
}

func (gs *GameSession) send(conn Notifier, message domain.ServerMessage) {
	if err := conn.SendMessage(gs.ConnID, message); err != nil {
		log.Debug().Str("component", "session").Str("conn_id", gs.ConnID).Str("type", message.Type).
			Err(err).Msg("send failed")
	}
}
