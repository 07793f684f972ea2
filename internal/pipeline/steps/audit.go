package steps

import (
	"log/slog"

	"github.com/Kavirubc/shopcopy/internal/pipeline/core"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Auditor evaluates a product's copy
type Auditor interface {
	Audit(p *models.Product) models.AuditResult
}

// Audit records the audit result. Products without issues skip the rest
// of the pipeline.
type Audit struct {
	auditor Auditor
}

func NewAudit(auditor Auditor) *Audit {
	return &Audit{auditor: auditor}
}

func (s *Audit) Name() string {
	return "audit"
}

func (s *Audit) Run(ctx *core.Context) error {
	ctx.Result.Audit = s.auditor.Audit(ctx.Product)

	if ctx.Result.Audit.IssuesFound == 0 {
		ctx.SkipReason = "no issues found"
		return core.ErrSkipPipeline
	}

	slog.DebugContext(ctx.Ctx, "audit found issues",
		"product_id", ctx.Product.ID,
		"issues", ctx.Result.Audit.IssuesFound,
		"severity", ctx.Result.Audit.Severity)
	return nil
}
