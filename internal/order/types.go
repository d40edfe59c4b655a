package order

// CreateInput identifies the SKU to order.
type CreateInput struct {
	SKUID string
}

// CreateOutput is a synthesized order.
type CreateOutput struct {
	OrderNumber string
	SKUID       string
}
