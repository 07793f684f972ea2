package llm

import (
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/config"
)

// NewProvider creates a provider from config. An empty provider name yields Disabled.
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	if cfg.Provider == "" {
		return Disabled{}, nil
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key not configured")
	}
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(cfg.APIKey, OptionsFromConfig(cfg))
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, OptionsFromConfig(cfg))
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
