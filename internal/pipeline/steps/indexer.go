package steps

import (
	"context"
	"log/slog"

	"github.com/Kavirubc/shopcopy/internal/pipeline/core"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// ProductIndexer stores product copy for later duplicate searches
type ProductIndexer interface {
	IndexProduct(ctx context.Context, p *models.Product) (bool, error)
}

// Indexer adds the product's current copy to the vector index
type Indexer struct {
	client ProductIndexer
	dryRun bool
}

func NewIndexer(client ProductIndexer, dryRun bool) *Indexer {
	return &Indexer{client: client, dryRun: dryRun}
}

func (s *Indexer) Name() string {
	return "indexer"
}

func (s *Indexer) Run(ctx *core.Context) error {
	if s.dryRun {
		return nil
	}

	updated, err := s.client.IndexProduct(ctx.Ctx, ctx.Product)
	if err != nil {
		slog.WarnContext(ctx.Ctx, "failed to index product", "product_id", ctx.Product.ID, "error", err)
		return nil
	}
	if !updated {
		slog.DebugContext(ctx.Ctx, "index already current", "product_id", ctx.Product.ID)
	}
	ctx.Result.Indexed = true
	return nil
}
