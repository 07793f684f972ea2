package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kavirubc/shopcopy/internal/embedding"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

const defaultBatchSize = 50

// Indexer embeds product copy and stores it for duplicate detection
type Indexer struct {
	backend *Backend
	dryRun  bool
}

// NewIndexer creates an indexer. In dry-run mode vectors are computed but never stored.
func NewIndexer(backend *Backend, dryRun bool) *Indexer {
	return &Indexer{backend: backend, dryRun: dryRun}
}

// IndexProducts indexes products in batches, skipping products whose copy
// has not changed since it was last stored. A failed batch is counted in
// Errors and does not stop the run.
func (idx *Indexer) IndexProducts(ctx context.Context, products []models.Product, batchSize int) (*models.IndexStats, error) {
	start := time.Now()
	stats := &models.IndexStats{TotalProducts: len(products)}

	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	if !idx.dryRun {
		if err := idx.backend.Vectors.EnsureCollection(ctx, idx.backend.Collection, idx.backend.Dimensions); err != nil {
			return nil, fmt.Errorf("failed to ensure collection: %w", err)
		}
	}

	for i := 0; i < len(products); i += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(i+batchSize, len(products))

		indexed, skipped, err := idx.indexBatch(ctx, products[i:end])
		if err != nil {
			slog.WarnContext(ctx, "index batch failed", "from", i, "to", end, "error", err)
			stats.Errors += end - i
			continue
		}
		stats.Indexed += indexed
		stats.Skipped += skipped
		slog.DebugContext(ctx, "indexed batch", "indexed", stats.Indexed, "total", stats.TotalProducts)
	}

	stats.DurationMs = int(time.Since(start).Milliseconds())
	return stats, nil
}

// IndexProduct indexes one product. It reports false when the stored copy
// was already current or the indexer is in dry-run mode.
func (idx *Indexer) IndexProduct(ctx context.Context, p *models.Product) (bool, error) {
	if !idx.dryRun {
		if err := idx.backend.Vectors.EnsureCollection(ctx, idx.backend.Collection, idx.backend.Dimensions); err != nil {
			return false, fmt.Errorf("failed to ensure collection: %w", err)
		}
	}
	indexed, _, err := idx.indexBatch(ctx, []models.Product{*p})
	if err != nil {
		return false, err
	}
	return indexed > 0, nil
}

// DeleteProducts removes products from the index
func (idx *Indexer) DeleteProducts(ctx context.Context, productIDs ...string) error {
	if idx.dryRun {
		return nil
	}
	return idx.backend.Vectors.Delete(ctx, idx.backend.Collection, idx.backend.Store, productIDs...)
}

func (idx *Indexer) indexBatch(ctx context.Context, batch []models.Product) (indexed, skipped int, err error) {
	changed := batch
	if !idx.dryRun {
		changed, err = idx.changedProducts(ctx, batch)
		if err != nil {
			return 0, 0, err
		}
	}
	skipped = len(batch) - len(changed)
	if len(changed) == 0 {
		return 0, skipped, nil
	}

	texts := make([]string, len(changed))
	ptrs := make([]*models.Product, len(changed))
	for i := range changed {
		texts[i] = embedding.PrepareProductText(&changed[i])
		ptrs[i] = &changed[i]
	}

	vectors, err := idx.backend.Embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if idx.dryRun {
		return 0, skipped, nil
	}

	if err := idx.backend.Vectors.UpsertBatch(ctx, idx.backend.Collection, idx.backend.Store, ptrs, vectors); err != nil {
		return 0, 0, fmt.Errorf("failed to upsert batch: %w", err)
	}
	return len(changed), skipped, nil
}

// changedProducts drops products whose stored content hash matches the current copy
func (idx *Indexer) changedProducts(ctx context.Context, batch []models.Product) ([]models.Product, error) {
	ids := make([]string, len(batch))
	for i := range batch {
		ids[i] = batch[i].ID
	}

	hashes, err := idx.backend.Vectors.ContentHashes(ctx, idx.backend.Collection, idx.backend.Store, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored hashes: %w", err)
	}

	changed := make([]models.Product, 0, len(batch))
	for _, p := range batch {
		if stored, ok := hashes[p.ID]; ok && stored == p.ContentHash() {
			continue
		}
		changed = append(changed, p)
	}
	return changed, nil
}
