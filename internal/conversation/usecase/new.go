package usecase

import (
	"time"

	"test-data-assistant/internal/dialogue"
	"test-data-assistant/internal/safety"
	pkgLog "test-data-assistant/pkg/log"
	"test-data-assistant/pkg/openai"
	"test-data-assistant/pkg/orderapi"
)

// Config tunes the run-poll loop.
type Config struct {
	PollMaxAttempts int
	PollInterval    time.Duration
	MaxToolRounds   int
}

type implUseCase struct {
	l      pkgLog.Logger
	openai openai.IOpenAI
	orders orderapi.IOrderAPI
	filter *safety.Filter
	store  *dialogue.Store
	cfg    Config
}

// New creates a new conversation UseCase instance.
func New(
	l pkgLog.Logger,
	openaiClient openai.IOpenAI,
	orders orderapi.IOrderAPI,
	filter *safety.Filter,
	store *dialogue.Store,
	cfg Config,
) *implUseCase {
	if cfg.PollMaxAttempts <= 0 {
		cfg.PollMaxAttempts = DefaultPollMaxAttempts
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = DefaultMaxToolRounds
	}

	return &implUseCase{
		l:      l,
		openai: openaiClient,
		orders: orders,
		filter: filter,
		store:  store,
		cfg:    cfg,
	}
}
