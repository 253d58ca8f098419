package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/gomoku/backend/internal/config"
	"github.com/iamasit07/gomoku/backend/internal/repository/redis"
	"github.com/iamasit07/gomoku/backend/internal/service/bot"
	"github.com/iamasit07/gomoku/backend/internal/service/cleanup"
	"github.com/iamasit07/gomoku/backend/internal/service/game"
	transportHttp "github.com/iamasit07/gomoku/backend/internal/transport/http"
	"github.com/iamasit07/gomoku/backend/internal/transport/websocket"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg := config.LoadConfig()
	config.SetupLogger(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(gin.ReleaseMode)
	if envErr != nil {
		log.Info().Msg("no .env file found, using process environment")
	}

	// 1. Decision cache
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Warn().Err(err).Msg("failed to initialize redis")
	}
	defer redis.CloseRedis()

	var cache game.MoveCache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewMoveCache(redis.RedisClient, cfg.MoveCacheTTL)
	}

	// 2. Services
	moveService := game.NewService(game.Options{
		BoardSizes: cfg.BoardSizes,
		Engine:     engineConfig(cfg.Engine),
		Timeout:    cfg.Engine.Timeout,
		Seed:       cfg.Engine.Seed,
	}, cache)
	sessionManager := game.NewSessionManager(moveService)
	connManager := websocket.NewConnectionManager()

	// 3. Background workers
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	cleanup.NewWorker(sessionManager, cfg.SessionIdleTimeout).Start(ctx)

	// 4. Handlers and router
	moveHandler := transportHttp.NewMoveHandler(moveService, cfg.DefaultBoardSize)
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.DefaultBoardSize, cfg.AllowedOrigins)
	router := transportHttp.NewRouter(moveHandler, gin.WrapF(wsHandler.HandleWebSocket), cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Ints("board_sizes", cfg.BoardSizes).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server is shutting down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}

func engineConfig(e config.EngineConfig) bot.Config {
	return bot.Config{
		NearRadius:           e.NearRadius,
		MoveCap:              e.MoveCap,
		CriticalShortcut:     e.CriticalShortcut,
		ThreatsForSideToMove: e.ThreatsForSideToMove,
		MaxNodes:             e.MaxNodes,
		Policies: map[bot.Tier]bot.Policy{
			bot.Easy:   {Depth: e.EasyDepth, Fallback: true},
			bot.Medium: {Depth: e.MediumDepth, Fallback: true},
			bot.Hard:   {Depth: e.HardDepth, Fallback: true},
		},
	}
}
