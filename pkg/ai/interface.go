package ai

import "context"

// ReplyGenerator is the interface for AI reply generation.
// Implement this interface to add new AI providers (Gemini, OpenAI, Ollama, etc.)
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
	Name() string // "gemini", "openai" or "ollama"
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)
