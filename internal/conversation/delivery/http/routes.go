package http

import (
	"github.com/gin-gonic/gin"

	"test-data-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Chat is the
// only rate-limited route since it fans out to the remote assistant.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	conv := rg.Group("/conversation")
	{
		conv.POST("/chat", mw.RateLimit(), h.Chat)
		conv.POST("/new", h.NewConversation)
		conv.GET("/status/:threadId", h.Status)
	}
}
