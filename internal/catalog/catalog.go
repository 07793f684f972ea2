package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// ErrNotFound is returned when a product id is not in the catalog
var ErrNotFound = errors.New("product not found")

// Source provides the products to process
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
}

// NewSource creates the source selected by config
func NewSource(cfg *config.CatalogConfig) (Source, error) {
	switch cfg.Source {
	case "", "mock":
		return MockSource{}, nil
	case "file":
		if cfg.Path == "" {
			return nil, fmt.Errorf("catalog.path is required for file source")
		}
		return NewFileSource(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.Source)
	}
}

// GetByID returns a single product from the source
func GetByID(ctx context.Context, src Source, id string) (*models.Product, error) {
	products, err := src.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Select returns the products with the given ids, in the order requested.
// An empty id list selects every product.
func Select(ctx context.Context, src Source, ids []string) ([]models.Product, error) {
	products, err := src.Products(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return products, nil
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	selected := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		selected = append(selected, p)
	}
	return selected, nil
}
