package llm

import (
	"errors"
	"strings"

	"github.com/Kavirubc/shopcopy/internal/config"
)

// ErrEmptyCompletion is returned when a backend answers without any text
var ErrEmptyCompletion = errors.New("llm returned no text")

// Options tunes a chat backend for short marketing copy
type Options struct {
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}

// OptionsFromConfig copies the generation settings out of the llm config section
func OptionsFromConfig(cfg *config.LLMConfig) Options {
	return Options{
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
}

func (o Options) withDefaults(model string) Options {
	if o.Model == "" {
		o.Model = model
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = 500
	}
	if o.Temperature <= 0 {
		o.Temperature = 0.7
	}
	return o
}

// joinText concatenates the text fragments of one answer
func joinText(parts []string) (string, error) {
	text := strings.TrimSpace(strings.Join(parts, ""))
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
