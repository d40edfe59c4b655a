package http

import (
	"test-data-assistant/internal/order"
)

// --- Request DTOs ---

type createOrderReq struct {
	SKUID string `json:"skuId" binding:"required"`
}

func (r createOrderReq) toInput() order.CreateInput {
	return order.CreateInput{SKUID: r.SKUID}
}

// --- Response DTOs ---

// createOrderResp is the wire contract consumed by the assistant's tool
// client, so it is emitted bare rather than in the standard envelope.
type createOrderResp struct {
	OrderNumber string `json:"orderNumber,omitempty"`
	SKUID       string `json:"skuId,omitempty"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
}

func (h *handler) newCreateOrderResp(out order.CreateOutput) createOrderResp {
	return createOrderResp{
		OrderNumber: out.OrderNumber,
		SKUID:       out.SKUID,
		Success:     true,
		Message:     "Order created successfully",
	}
}

func failedOrderResp(message string) createOrderResp {
	return createOrderResp{
		Success: false,
		Message: message,
	}
}
