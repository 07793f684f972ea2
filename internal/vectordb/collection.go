package vectordb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/qdrant/go-client/qdrant"
)

// payloadIndexes are the keyword fields product searches filter on
var payloadIndexes = []string{"store", "product_id", "product_type", "vendor"}

// EnsureCollection creates the collection with cosine distance if it is missing
func (c *Client) EnsureCollection(ctx context.Context, name string, dimensions int) error {
	exists, err := c.qdrant.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = c.qdrant.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimensions),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}

	for _, field := range payloadIndexes {
		_, err = c.qdrant.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
			CollectionName: name,
			FieldName:      field,
			FieldType:      qdrant.PtrOf(qdrant.FieldType_FieldTypeKeyword),
		})
		if err != nil {
			// Searches still work without the index
			slog.WarnContext(ctx, "failed to create payload index", "collection", name, "field", field, "error", err)
		}
	}

	slog.InfoContext(ctx, "created collection", "collection", name, "dimensions", dimensions)
	return nil
}

func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	return c.qdrant.DeleteCollection(ctx, name)
}
