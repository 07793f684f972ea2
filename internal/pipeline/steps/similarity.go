package steps

import (
	"context"
	"log/slog"

	"github.com/Kavirubc/shopcopy/internal/pipeline/core"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// SimilarityFinder looks up catalog products with near-duplicate copy
type SimilarityFinder interface {
	FindSimilar(ctx context.Context, p *models.Product) ([]models.SimilarProduct, error)
}

// SimilaritySearch records near-duplicate copy. It never changes the
// audit or the priority.
type SimilaritySearch struct {
	finder SimilarityFinder
}

func NewSimilaritySearch(finder SimilarityFinder) *SimilaritySearch {
	return &SimilaritySearch{finder: finder}
}

func (s *SimilaritySearch) Name() string {
	return "similarity_search"
}

func (s *SimilaritySearch) Run(ctx *core.Context) error {
	similar, err := s.finder.FindSimilar(ctx.Ctx, ctx.Product)
	if err != nil {
		slog.WarnContext(ctx.Ctx, "similarity search failed", "product_id", ctx.Product.ID, "error", err)
		return nil
	}

	if len(similar) > 0 {
		ctx.Result.SimilarProducts = similar
	}
	return nil
}
