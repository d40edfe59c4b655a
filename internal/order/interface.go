package order

import "context"

// UseCase synthesizes test orders on demand.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
}
