package vectordb

import (
	"context"
	"fmt"

	"github.com/Kavirubc/shopcopy/pkg/models"
	"github.com/qdrant/go-client/qdrant"
)

// SearchOptions narrows a similarity query
type SearchOptions struct {
	Limit     int
	Threshold float64
	// ExcludeProductID keeps a product from matching itself
	ExcludeProductID string
}

// Search returns products whose copy vector scores at or above the threshold,
// best match first
func (c *Client) Search(ctx context.Context, collection string, vector []float32, opts SearchOptions) ([]models.SearchResult, error) {
	if opts.Limit <= 0 {
		return []models.SearchResult{}, nil
	}
	threshold := float32(opts.Threshold)

	points, err := c.qdrant.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(opts.Limit)),
		ScoreThreshold: &threshold,
		Filter:         searchFilter(opts),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]models.SearchResult, 0, len(points))
	for _, point := range points {
		results = append(results, models.SearchResult{
			Product: payloadToProduct(point.Payload),
			Score:   float64(point.Score),
		})
	}
	return results, nil
}

func searchFilter(opts SearchOptions) *qdrant.Filter {
	if opts.ExcludeProductID == "" {
		return nil
	}
	return &qdrant.Filter{
		MustNot: []*qdrant.Condition{
			qdrant.NewMatchKeyword("product_id", opts.ExcludeProductID),
		},
	}
}

// payloadToProduct rebuilds a product from its stored payload
func payloadToProduct(payload map[string]*qdrant.Value) models.Product {
	p := models.Product{
		ID:             payload["product_id"].GetStringValue(),
		Title:          payload["title"].GetStringValue(),
		Description:    payload["description"].GetStringValue(),
		Vendor:         payload["vendor"].GetStringValue(),
		ProductType:    payload["product_type"].GetStringValue(),
		SEOTitle:       payload["seo_title"].GetStringValue(),
		SEODescription: payload["seo_description"].GetStringValue(),
		Price:          payload["price"].GetDoubleValue(),
		Tags:           []string{},
	}
	if list := payload["tags"].GetListValue(); list != nil {
		for _, item := range list.Values {
			p.Tags = append(p.Tags, item.GetStringValue())
		}
	}
	return p
}
