package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// keyFile is the fallback location for the OpenAI API key.
const keyFile = "open_ai_key"

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	OpenAI       OpenAIConfig
	Safety       SafetyConfig
	Order        OrderConfig
	Conversation ConversationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	AssistantID string
}

type SafetyConfig struct {
	FilterEnabled             bool
	JailbreakDetectionEnabled bool
	DomainValidationEnabled   bool
}

type OrderConfig struct {
	BaseURL string
}

type ConversationConfig struct {
	PollMaxAttempts     int
	PollIntervalMs      int
	MaxToolRounds       int
	ChatRateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.AssistantID = viper.GetString("openai.assistant_id")
	if assistantID := viper.GetString("openai_assistant_id"); assistantID != "" {
		cfg.OpenAI.AssistantID = assistantID
	}

	apiKey, err := resolveOpenAIKey()
	if err != nil {
		return nil, err
	}
	cfg.OpenAI.APIKey = apiKey

	// Safety filter toggles
	cfg.Safety.FilterEnabled = viper.GetBool("safety.filter_enabled")
	cfg.Safety.JailbreakDetectionEnabled = viper.GetBool("safety.jailbreak_detection_enabled")
	cfg.Safety.DomainValidationEnabled = viper.GetBool("safety.domain_validation_enabled")

	// Order collaborator
	cfg.Order.BaseURL = viper.GetString("order.base_url")

	// Conversation polling
	cfg.Conversation.PollMaxAttempts = viper.GetInt("conversation.poll_max_attempts")
	cfg.Conversation.PollIntervalMs = viper.GetInt("conversation.poll_interval_ms")
	cfg.Conversation.MaxToolRounds = viper.GetInt("conversation.max_tool_rounds")
	cfg.Conversation.ChatRateLimitPerMin = viper.GetInt("conversation.chat_rate_limit_per_min")

	if cfg.OpenAI.AssistantID == "" {
		return nil, fmt.Errorf("openai.assistant_id is required")
	}

	return cfg, nil
}

// resolveOpenAIKey resolves the API key in precedence order: environment
// variable, config file entry, then the open_ai_key file next to the binary.
func resolveOpenAIKey() (string, error) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return strings.TrimSpace(key), nil
	}

	if key := viper.GetString("openai.api_key"); key != "" {
		return strings.TrimSpace(key), nil
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("OpenAI API key not found in OPENAI_API_KEY, config, or %s file", keyFile)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("OpenAI API key file %s is empty", keyFile)
	}
	return key, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")

	viper.SetDefault("safety.filter_enabled", true)
	viper.SetDefault("safety.jailbreak_detection_enabled", true)
	viper.SetDefault("safety.domain_validation_enabled", true)

	viper.SetDefault("order.base_url", "http://localhost:8080")

	viper.SetDefault("conversation.poll_max_attempts", 30)
	viper.SetDefault("conversation.poll_interval_ms", 1000)
	viper.SetDefault("conversation.max_tool_rounds", 10)
	viper.SetDefault("conversation.chat_rate_limit_per_min", 60)
}
