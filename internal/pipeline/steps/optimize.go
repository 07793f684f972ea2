package steps

import (
	"context"

	"github.com/Kavirubc/shopcopy/internal/pipeline/core"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Synthesizer regenerates copy for the fields the audit flagged
type Synthesizer interface {
	Synthesize(ctx context.Context, p *models.Product, issues []models.Issue) *models.Optimization
}

// Optimize attaches regenerated copy to products that need action
type Optimize struct {
	synth Synthesizer
}

func NewOptimize(synth Synthesizer) *Optimize {
	return &Optimize{synth: synth}
}

func (s *Optimize) Name() string {
	return "optimize"
}

func (s *Optimize) Run(ctx *core.Context) error {
	if ctx.Result.Audit.IssuesFound == 0 {
		return nil
	}
	ctx.Result.Optimization = s.synth.Synthesize(ctx.Ctx, ctx.Product, ctx.Result.Audit.Issues)
	return nil
}
