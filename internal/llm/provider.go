package llm

import (
	"context"
)

// Provider defines the interface for LLM chat completion
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, system, prompt string) (string, error)
	Close() error
}

// Capability describes what a configured provider can do
type Capability struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

// Describer is implemented by providers that report their capability
type Describer interface {
	Capability() Capability
}

// Describe returns the capability of p, or a disabled descriptor
func Describe(p Provider) Capability {
	if d, ok := p.(Describer); ok {
		return d.Capability()
	}
	return Capability{Provider: "unknown", Enabled: p != nil}
}
