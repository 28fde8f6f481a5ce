package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjzar/mcpcalc/internal/mcp"
)

func (s *Service) initRouter() {
	s.initBaseRouter()
	s.initMCPRouter()
}

func (s *Service) initBaseRouter() {
	s.router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.NoRoute(s.NoRoute)
}

func (s *Service) initMCPRouter() {
	s.router.GET(mcp.SSEPath, s.mcp.HandleSSE)
	s.router.POST(mcp.MessagePath, s.mcp.HandleMessages)
	s.router.POST(mcp.MessagesPath, s.mcp.HandleMessages)
	s.router.POST(mcp.MCPPath, s.mcp.HandleRPC)
}

// NoRoute handles 404 Not Found errors with a JSON body.
func (s *Service) NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
