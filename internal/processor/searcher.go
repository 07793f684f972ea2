package processor

import (
	"context"

	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Searcher handles interactive copy searches against the index
type Searcher struct {
	backend *Backend
	finder  *SimilarityFinder
}

// NewSearcher connects to the configured backend
func NewSearcher(cfg *config.Config) (*Searcher, error) {
	backend, err := NewBackend(cfg)
	if err != nil {
		return nil, err
	}
	return &Searcher{
		backend: backend,
		finder:  NewSimilarityFinder(backend, cfg.Duplicates.Threshold, cfg.Duplicates.MaxShown),
	}, nil
}

func (s *Searcher) Close() error {
	return s.backend.Close()
}

// Search returns indexed products matching the query, best first
func (s *Searcher) Search(ctx context.Context, query string, limit int, threshold float64) ([]models.SearchResult, error) {
	return s.finder.FindSimilarByText(ctx, query, limit, threshold)
}
