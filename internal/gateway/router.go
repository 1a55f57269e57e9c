package gateway

import "github.com/gin-gonic/gin"

// NewRouter wires the arena routes with recovery, request-id, and logging
// middleware.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())

	r.POST("/v1/arena/runs", h.RunArena)
	r.GET("/health", h.Health)

	return r
}
