package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider writes copy with the OpenAI chat API or any compatible endpoint
type OpenAIProvider struct {
	client *openai.Client
	opts   Options
}

func NewOpenAIProvider(apiKey string, opts Options) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		clientCfg.BaseURL = opts.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		opts:   opts.withDefaults(defaultOpenAIModel),
	}, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.CompleteWithSystem(ctx, "", prompt)
}

// CompleteWithSystem returns the first choice. A reply cut off by the token
// limit is still returned, with a warning.
func (p *OpenAIProvider) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.opts.Model,
		Messages:    chatMessages(system, prompt),
		MaxTokens:   p.opts.MaxTokens,
		Temperature: float32(p.opts.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai %s: %w", p.opts.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonLength {
		slog.WarnContext(ctx, "completion truncated by max_tokens", "model", p.opts.Model, "max_tokens", p.opts.MaxTokens)
	}
	return joinText([]string{choice.Message.Content})
}

func chatMessages(system, prompt string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	return append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})
}

func (p *OpenAIProvider) Close() error {
	return nil
}

func (p *OpenAIProvider) Capability() Capability {
	return Capability{Enabled: true, Provider: "openai", Model: p.opts.Model}
}
