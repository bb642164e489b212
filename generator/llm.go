package generator

import (
	"context"
	"fmt"
)

// LLMClient abstracts the text-generation backend so it can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"

	DefaultGeminiModel     = "gemini-2.5-flash-lite"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultTemperature     = 0.9
	DefaultMaxOutputTokens = 4096
)

// LLMSettings is the provider-independent configuration handed to the
// concrete clients.
type LLMSettings struct {
	Provider        string
	Model           string
	APIKey          string
	BaseURL         string
	Temperature     float64
	MaxOutputTokens int
}

// NewLLM builds the client for settings.Provider.
func NewLLM(ctx context.Context, settings *LLMSettings) (LLMClient, error) {
	if settings == nil || settings.Provider == "" {
		return nil, fmt.Errorf("llm provider missing; set llm.provider in config")
	}
	switch settings.Provider {
	case ProviderGemini:
		return NewGeminiLLMFromConfig(ctx, settings)
	case ProviderOpenAI:
		return NewOpenAILLMFromConfig(settings)
	case ProviderMock:
		return MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", settings.Provider)
	}
}

func (s *LLMSettings) temperature() float64 {
	if s.Temperature <= 0 {
		return DefaultTemperature
	}
	return s.Temperature
}

func (s *LLMSettings) maxOutputTokens() int {
	if s.MaxOutputTokens <= 0 {
		return DefaultMaxOutputTokens
	}
	return s.MaxOutputTokens
}
