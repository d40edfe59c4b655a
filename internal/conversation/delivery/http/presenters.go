package http

import (
	"test-data-assistant/internal/conversation"
)

// --- Request DTOs ---

type chatReq struct {
	Message  string `json:"message"  binding:"required"`
	ThreadID string `json:"threadId"`
}

func (r chatReq) toInput() conversation.ChatInput {
	return conversation.ChatInput{
		Message:  r.Message,
		ThreadID: r.ThreadID,
	}
}

type newReq struct {
	DeleteCurrentThread bool `json:"deleteCurrentThread"`
}

func (r newReq) toInput() conversation.NewConversationInput {
	return conversation.NewConversationInput{
		DeleteCurrentThread: r.DeleteCurrentThread,
	}
}

// --- Response DTOs ---

type chatResp struct {
	ThreadID     string `json:"threadId"`
	Response     string `json:"response"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	TurnCount    int    `json:"turnCount"`
}

func (h *handler) newChatResp(out conversation.ChatOutput) chatResp {
	return chatResp{
		ThreadID:     out.ThreadID,
		Response:     out.Response,
		Success:      out.Success,
		ErrorMessage: out.ErrorMessage,
		TurnCount:    out.TurnCount,
	}
}

// newResp mirrors the chat DTO so the widget can treat a reset like a turn:
// no thread, zero turns.
type newResp struct {
	ThreadID  string `json:"threadId"`
	Response  string `json:"response"`
	Success   bool   `json:"success"`
	TurnCount int    `json:"turnCount"`
}

func (h *handler) newNewResp(out conversation.NewConversationOutput) newResp {
	return newResp{
		Response: out.Response,
		Success:  true,
	}
}

type statusResp struct {
	ThreadID  string `json:"threadId"`
	TurnCount int    `json:"turnCount"`
	Active    bool   `json:"active"`
}

func (h *handler) newStatusResp(out conversation.StatusOutput) statusResp {
	return statusResp{
		ThreadID:  out.ThreadID,
		TurnCount: out.TurnCount,
		Active:    true,
	}
}
