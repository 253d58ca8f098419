package http

import (
	"github.com/gin-gonic/gin"

	"github.com/iamasit07/gomoku/backend/internal/transport/http/middleware"
)

// NewRouter wires the HTTP routes. ws may be nil when live play is disabled.
func NewRouter(moves *MoveHandler, ws gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/health", Health)
	router.POST("/ai_move", moves.AIMove)

	api := router.Group("/api")
	{
		api.POST("/move", moves.AIMove)
		api.GET("/config", moves.Settings)
	}

	if ws != nil {
		router.GET("/ws", ws)
	}

	return router
}
