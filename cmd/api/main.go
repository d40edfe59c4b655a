package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"test-data-assistant/config"
	_ "test-data-assistant/docs" // Swagger docs
	conversationUC "test-data-assistant/internal/conversation/usecase"
	"test-data-assistant/internal/dialogue"
	"test-data-assistant/internal/httpserver"
	orderUC "test-data-assistant/internal/order/usecase"
	"test-data-assistant/internal/safety"
	"test-data-assistant/pkg/log"
	"test-data-assistant/pkg/openai"
	"test-data-assistant/pkg/orderapi"
)

// @title       Test Data Assistant API
// @description Conversational proxy for assistant-driven test data generation with order synthesis.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Test Data Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Assistant ID: %s", cfg.OpenAI.AssistantID)

	// 3. Clients
	openaiClient, err := openai.New(openai.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		AssistantID: cfg.OpenAI.AssistantID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	orderClient := orderapi.NewClient(cfg.Order.BaseURL)

	// 4. Domain wiring
	filter := safety.New(logger, safety.Config{
		FilterEnabled:             cfg.Safety.FilterEnabled,
		JailbreakDetectionEnabled: cfg.Safety.JailbreakDetectionEnabled,
		DomainValidationEnabled:   cfg.Safety.DomainValidationEnabled,
	})
	store := dialogue.New(logger)

	convUC := conversationUC.New(logger, openaiClient, orderClient, filter, store, conversationUC.Config{
		PollMaxAttempts: cfg.Conversation.PollMaxAttempts,
		PollInterval:    time.Duration(cfg.Conversation.PollIntervalMs) * time.Millisecond,
		MaxToolRounds:   cfg.Conversation.MaxToolRounds,
	})
	ordUC := orderUC.New(logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		ChatRateLimitPerMin: cfg.Conversation.ChatRateLimitPerMin,
		ConversationUC:      convUC,
		OrderUC:             ordUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
