package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider writes copy with the Gemini API
type GeminiProvider struct {
	client *genai.Client
	opts   Options
}

func NewGeminiProvider(apiKey string, opts Options) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, opts: opts.withDefaults(defaultGeminiModel)}, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.CompleteWithSystem(ctx, "", prompt)
}

// CompleteWithSystem sends one user turn, with system as the system instruction
// when set, and returns the text of the first candidate
func (p *GeminiProvider) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.opts.Model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}},
		p.generationConfig(system))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", p.opts.Model, err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}
	var parts []string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil {
			parts = append(parts, part.Text)
		}
	}
	return joinText(parts)
}

func (p *GeminiProvider) generationConfig(system string) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		MaxOutputTokens: genai.Ptr(int32(p.opts.MaxTokens)),
		Temperature:     genai.Ptr(float32(p.opts.Temperature)),
	}
	if system != "" {
		gc.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	return gc
}

func (p *GeminiProvider) Close() error {
	return nil
}

func (p *GeminiProvider) Capability() Capability {
	return Capability{Enabled: true, Provider: "gemini", Model: p.opts.Model}
}
