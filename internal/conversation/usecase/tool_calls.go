package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"test-data-assistant/pkg/openai"
)

// resolveToolCalls resolves a requires_action payload and submits the batch
// of outputs. Returns true only when at least one output was submitted;
// failures are logged and degrade to false so the poll loop keeps going.
func (uc *implUseCase) resolveToolCalls(ctx context.Context, threadID, runID string, run *openai.Run) bool {
	action := run.RequiredAction
	if action == nil {
		return false
	}
	if action.Type != openai.RequiredActionSubmitToolOutputs {
		uc.l.Warnf(ctx, "Unknown required_action type: %s", action.Type)
		return false
	}
	if action.SubmitToolOutputs == nil {
		return false
	}

	toolCalls := action.SubmitToolOutputs.ToolCalls
	outputs := make([]openai.ToolOutput, 0, len(toolCalls))

	for _, call := range toolCalls {
		var args map[string]any
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			// Malformed payloads are skipped, not fatal for the turn.
			uc.l.Errorf(ctx, "Error parsing arguments of tool call %s: %v", call.ID, err)
			continue
		}

		uc.l.Infof(ctx, "Processing tool call: %s with function: %s", call.ID, call.Function.Name)

		var output string
		switch call.Function.Name {
		case FunctionGenerateTestOrder:
			output = uc.generateOrder(ctx, args)
		default:
			output = "Unknown function: " + call.Function.Name
		}

		outputs = append(outputs, openai.ToolOutput{ToolCallID: call.ID, Output: output})
	}

	if len(outputs) == 0 {
		return false
	}

	if err := uc.openai.SubmitToolOutputs(ctx, threadID, runID, outputs); err != nil {
		uc.l.Errorf(ctx, "Error submitting tool outputs: %v", err)
		return false
	}

	uc.l.Infof(ctx, "Submitted %d tool outputs", len(outputs))
	return true
}

// generateOrder resolves the order-generation function. Collaborator
// failures become human-readable strings handed back to the assistant.
func (uc *implUseCase) generateOrder(ctx context.Context, args map[string]any) string {
	skuID, _ := args["sku_id"].(string)
	if skuID == "" {
		return "Error: SKU ID is required but not provided"
	}

	resp, err := uc.orders.CreateOrder(ctx, skuID)
	if err != nil {
		uc.l.Errorf(ctx, "Error calling order creation API: %v", err)
		return "Failed to create order: " + err.Error()
	}
	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Unknown error"
		}
		uc.l.Errorf(ctx, "Failed to create order: %s", message)
		return "Failed to create order: " + message
	}

	uc.l.Infof(ctx, "Generated order %s for SKU: %s", resp.OrderNumber, skuID)
	return fmt.Sprintf("Order created successfully. Order Number: %s, SKU: %s", resp.OrderNumber, skuID)
}
