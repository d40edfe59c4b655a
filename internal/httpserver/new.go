package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"test-data-assistant/internal/conversation"
	"test-data-assistant/internal/order"
	"test-data-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	chatRateLimitPerMin int

	conversationUC conversation.UseCase
	orderUC        order.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatRateLimitPerMin int

	ConversationUC conversation.UseCase
	OrderUC        order.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		chatRateLimitPerMin: cfg.ChatRateLimitPerMin,
		conversationUC:      cfg.ConversationUC,
		orderUC:             cfg.OrderUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation usecase is required")
	}
	if srv.orderUC == nil {
		return errors.New("order usecase is required")
	}
	return nil
}
