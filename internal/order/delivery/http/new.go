package http

import (
	"github.com/gin-gonic/gin"

	"test-data-assistant/internal/order"
	"test-data-assistant/pkg/log"
)

// Handler is the public interface for the order HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc order.UseCase
}

// New creates a new HTTP handler for the order domain.
func New(l log.Logger, uc order.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
