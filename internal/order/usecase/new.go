package usecase

import (
	"test-data-assistant/internal/order"
	"test-data-assistant/pkg/log"
)

type implUseCase struct {
	l log.Logger
}

// New creates the order use case.
func New(l log.Logger) order.UseCase {
	return &implUseCase{l: l}
}
