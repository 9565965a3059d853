package ai

import (
	"fmt"

	"email-responder-backend/pkg/gemini"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "openai" or "ollama"

	// Gemini config
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// OpenAI config
	OpenAIAPIKey string
	OpenAIModel  string // e.g., "gpt-4o-mini"

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewReplyGenerator creates a ReplyGenerator based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewReplyGenerator(cfg Config) (ReplyGenerator, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return gemini.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL), nil

	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil

	case ProviderOllama:
		return NewOllamaGenerator(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
}

// DynamicConfig holds AI provider configuration with runtime getters for
// the Ollama settings, which can change through the settings API while
// the server is running.
type DynamicConfig struct {
	Provider ProviderType

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	OpenAIAPIKey string
	OpenAIModel  string

	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewReplyGeneratorWithDynamicConfig creates a ReplyGenerator whose Ollama
// settings are re-read on every call
func NewReplyGeneratorWithDynamicConfig(cfg DynamicConfig) (ReplyGenerator, error) {
	if cfg.Provider == ProviderOllama {
		return NewOllamaGeneratorWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil
	}
	return NewReplyGenerator(Config{
		Provider:      cfg.Provider,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
		GeminiBaseURL: cfg.GeminiBaseURL,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
	})
}
