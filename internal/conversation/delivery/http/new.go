package http

import (
	"github.com/gin-gonic/gin"

	"test-data-assistant/internal/conversation"
	"test-data-assistant/pkg/log"
)

// Handler is the public interface for the conversation HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	NewConversation(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates a new HTTP handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
