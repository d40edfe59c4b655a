package http

import (
	"github.com/gin-gonic/gin"

	"test-data-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Sends one user message to the assistant and waits for the reply. A missing or unknown threadId starts a new conversation.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request - empty or rejected message"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/conversation/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// NewConversation godoc
// @Summary     Start a fresh conversation
// @Description Clears all local conversation state. Optionally deletes the current remote thread first.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body newReq false "Reset options"
// @Success     200 {object} newResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/conversation/new [POST]
func (h *handler) NewConversation(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.NewConversation(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.NewConversation: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newNewResp(output))
}

// Status godoc
// @Summary     Get conversation status
// @Description Returns the turn count of a locally known thread.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       threadId path string true "Thread ID"
// @Success     200 {object} statusResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/conversation/status/{threadId} [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	threadID := c.Param("threadId")

	output, err := h.uc.Status(ctx, threadID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newStatusResp(output))
}
