package processor

import (
	"context"
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/embedding"
	"github.com/Kavirubc/shopcopy/internal/vectordb"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// SimilarityFinder looks up catalog products with near-duplicate copy
type SimilarityFinder struct {
	backend   *Backend
	threshold float64
	maxShown  int
}

func NewSimilarityFinder(backend *Backend, threshold float64, maxShown int) *SimilarityFinder {
	return &SimilarityFinder{backend: backend, threshold: threshold, maxShown: maxShown}
}

// FindSimilar returns other products whose copy scores at or above the
// duplicate threshold. The product itself is never included.
func (sf *SimilarityFinder) FindSimilar(ctx context.Context, p *models.Product) ([]models.SimilarProduct, error) {
	vector, err := sf.backend.Embedder.Embed(ctx, embedding.PrepareProductText(p))
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	results, err := sf.backend.Vectors.Search(ctx, sf.backend.Collection, vector, vectordb.SearchOptions{
		Limit:            sf.maxShown + 1,
		Threshold:        sf.threshold,
		ExcludeProductID: p.ID,
	})
	if err != nil {
		return nil, err
	}

	similar := make([]models.SimilarProduct, 0, len(results))
	for _, r := range results {
		// Backup check in case the store ignored the filter
		if r.Product.ID == p.ID {
			continue
		}
		similar = append(similar, models.SimilarProduct{
			ProductID: r.Product.ID,
			Title:     r.Product.Title,
			Score:     r.Score,
		})
		if len(similar) == sf.maxShown {
			break
		}
	}
	return similar, nil
}

// FindSimilarByText searches the index with free text
func (sf *SimilarityFinder) FindSimilarByText(ctx context.Context, text string, limit int, threshold float64) ([]models.SearchResult, error) {
	vector, err := sf.backend.Embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	return sf.backend.Vectors.Search(ctx, sf.backend.Collection, vector, vectordb.SearchOptions{
		Limit:     limit,
		Threshold: threshold,
	})
}
