package orderapi

import "context"

// IOrderAPI defines the interface for the order-creation collaborator.
type IOrderAPI interface {
	CreateOrder(ctx context.Context, skuID string) (CreateOrderResponse, error)
}
