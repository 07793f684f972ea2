package processor

import (
	"context"
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/Kavirubc/shopcopy/internal/embedding"
	"github.com/Kavirubc/shopcopy/internal/vectordb"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Embedder turns product copy into vectors
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorStore is the subset of the Qdrant client the duplicate index needs
type VectorStore interface {
	EnsureCollection(ctx context.Context, name string, dimensions int) error
	UpsertBatch(ctx context.Context, collection, store string, products []*models.Product, vectors [][]float32) error
	ContentHashes(ctx context.Context, collection, store string, productIDs []string) (map[string]string, error)
	Search(ctx context.Context, collection string, vector []float32, opts vectordb.SearchOptions) ([]models.SearchResult, error)
	Delete(ctx context.Context, collection, store string, productIDs ...string) error
}

// Backend bundles the embedding provider and vector store for one store's collection
type Backend struct {
	Embedder   Embedder
	Vectors    VectorStore
	Store      string
	Collection string
	Dimensions int

	closers []func() error
}

// NewBackend connects the configured embedding providers and Qdrant
func NewBackend(cfg *config.Config) (*Backend, error) {
	embedder, err := embedding.NewFallbackProvider(&cfg.Embedding, cfg.RateLimits.EmbeddingRPS)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	vdb, err := vectordb.NewClient(&cfg.Qdrant)
	if err != nil {
		embedder.Close()
		return nil, err
	}

	b := NewBackendFrom(cfg, embedder, vdb)
	b.closers = []func() error{embedder.Close, vdb.Close}
	return b, nil
}

// NewBackendFrom assembles a backend from existing collaborators
func NewBackendFrom(cfg *config.Config, embedder Embedder, vectors VectorStore) *Backend {
	return &Backend{
		Embedder:   embedder,
		Vectors:    vectors,
		Store:      cfg.Store,
		Collection: cfg.CollectionName(),
		Dimensions: cfg.Embedding.Primary.Dimensions,
	}
}

// Close releases the provider and store connections
func (b *Backend) Close() error {
	var first error
	for _, c := range b.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
