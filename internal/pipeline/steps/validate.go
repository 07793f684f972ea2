package steps

import (
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/pipeline/core"
)

// Validate rejects products that break the input contract
type Validate struct{}

func NewValidate() *Validate {
	return &Validate{}
}

func (s *Validate) Name() string {
	return "validate"
}

func (s *Validate) Run(ctx *core.Context) error {
	if err := ctx.Product.Validate(); err != nil {
		return fmt.Errorf("product %d: %w", ctx.Index, err)
	}
	return nil
}
