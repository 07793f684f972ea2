package vectordb

import (
	"context"
	"fmt"

	"github.com/Kavirubc/shopcopy/pkg/models"
	"github.com/qdrant/go-client/qdrant"
)

// Upsert stores one product's copy vector
func (c *Client) Upsert(ctx context.Context, collection, store string, product *models.Product, vector []float32) error {
	return c.UpsertBatch(ctx, collection, store, []*models.Product{product}, [][]float32{vector})
}

// UpsertBatch stores several product vectors in a single request
func (c *Client) UpsertBatch(ctx context.Context, collection, store string, products []*models.Product, vectors [][]float32) error {
	if len(products) != len(vectors) {
		return fmt.Errorf("products and vectors length mismatch: %d != %d", len(products), len(vectors))
	}
	if len(products) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, len(products))
	for i, p := range products {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(p.UUID(store)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: productPayload(store, p),
		}
	}

	_, err := c.qdrant.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}

// Delete removes products from the index by product ID
func (c *Client) Delete(ctx context.Context, collection, store string, productIDs ...string) error {
	if len(productIDs) == 0 {
		return nil
	}

	_, err := c.qdrant.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: pointIDs(store, productIDs)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// ContentHashes returns the stored content hash for each indexed product ID.
// Products that are not indexed are absent from the map.
func (c *Client) ContentHashes(ctx context.Context, collection, store string, productIDs []string) (map[string]string, error) {
	hashes := make(map[string]string, len(productIDs))
	if len(productIDs) == 0 {
		return hashes, nil
	}

	points, err := c.qdrant.Get(ctx, &qdrant.GetPoints{
		CollectionName: collection,
		Ids:            pointIDs(store, productIDs),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch points: %w", err)
	}

	for _, point := range points {
		id := point.Payload["product_id"].GetStringValue()
		if id != "" {
			hashes[id] = point.Payload["content_hash"].GetStringValue()
		}
	}
	return hashes, nil
}

func pointIDs(store string, productIDs []string) []*qdrant.PointId {
	ids := make([]*qdrant.PointId, len(productIDs))
	for i, id := range productIDs {
		ids[i] = qdrant.NewIDUUID(models.ProductUUID(store, id))
	}
	return ids
}

// productPayload flattens a product into Qdrant payload values
func productPayload(store string, p *models.Product) map[string]*qdrant.Value {
	tags := make([]*qdrant.Value, len(p.Tags))
	for i, tag := range p.Tags {
		tags[i] = qdrant.NewValueString(tag)
	}

	return map[string]*qdrant.Value{
		"store":           qdrant.NewValueString(store),
		"product_id":      qdrant.NewValueString(p.ID),
		"title":           qdrant.NewValueString(p.Title),
		"description":     qdrant.NewValueString(p.Description),
		"vendor":          qdrant.NewValueString(p.Vendor),
		"product_type":    qdrant.NewValueString(p.ProductType),
		"seo_title":       qdrant.NewValueString(p.SEOTitle),
		"seo_description": qdrant.NewValueString(p.SEODescription),
		"price":           qdrant.NewValueDouble(p.Price),
		"content_hash":    qdrant.NewValueString(p.ContentHash()),
		"tags": &qdrant.Value{
			Kind: &qdrant.Value_ListValue{ListValue: &qdrant.ListValue{Values: tags}},
		},
	}
}
