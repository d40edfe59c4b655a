package orderapi

// CreateOrderRequest is the order-creation request body.
type CreateOrderRequest struct {
	SKUID string `json:"skuId"`
}

// CreateOrderResponse is the order-creation response body.
type CreateOrderResponse struct {
	OrderNumber string `json:"orderNumber"`
	SKUID       string `json:"skuId"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
}
