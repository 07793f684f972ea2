package llm

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the disabled provider for every request
var ErrDisabled = errors.New("llm provider not configured")

// Disabled is the no-op provider used when no backend is configured
type Disabled struct{}

func (Disabled) Complete(ctx context.Context, prompt string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Close() error {
	return nil
}

func (Disabled) Capability() Capability {
	return Capability{Enabled: false, Provider: "disabled"}
}
