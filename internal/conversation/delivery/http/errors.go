package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"test-data-assistant/internal/conversation"
	"test-data-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses. Rejected input
// and empty messages are the caller's fault; unknown threads are 404;
// anything else is an internal failure.
func (h *handler) respondError(c *gin.Context, err error) {
	var rejection *conversation.RejectionError
	switch {
	case errors.As(err, &rejection):
		response.Error(c, rejection, nil)
	case errors.Is(err, conversation.ErrEmptyMessage):
		response.Error(c, err, nil)
	case errors.Is(err, conversation.ErrThreadNotFound):
		response.NotFound(c)
	default:
		response.InternalError(c, err)
	}
}
