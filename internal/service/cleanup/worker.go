package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/gomoku/backend/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	IdleTimeout    time.Duration
}

func NewWorker(sm *game.SessionManager, idleTimeout time.Duration) *Worker {
	interval := idleTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	return &Worker{SessionManager: sm, Interval: interval, IdleTimeout: idleTimeout}
}

// Start runs the sweep periodically until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	log.Info().Str("component", "cleanup").Dur("interval", w.Interval).Msg("background worker started")

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Str("component", "cleanup").Msg("background worker stopped")
				return
			case <-ticker.C:
				w.runCleanup()
			}
		}
	}()
}

func (w *Worker) runCleanup() int {
	return w.SessionManager.CleanupIdleSessions(w.IdleTimeout)
}
