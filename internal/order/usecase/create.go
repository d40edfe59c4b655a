package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"test-data-assistant/internal/order"
)

// Create synthesizes a test order. Order numbers are millisecond timestamps,
// unique enough for test data purposes.
func (uc *implUseCase) Create(ctx context.Context, input order.CreateInput) (order.CreateOutput, error) {
	skuID := strings.TrimSpace(input.SKUID)
	if skuID == "" {
		return order.CreateOutput{}, order.ErrEmptySKU
	}

	orderNumber := strconv.FormatInt(time.Now().UnixMilli(), 10)

	uc.l.Infof(ctx, "Created test order %s for SKU: %s", orderNumber, skuID)

	return order.CreateOutput{
		OrderNumber: orderNumber,
		SKUID:       skuID,
	}, nil
}
