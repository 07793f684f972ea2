package catalog

import (
	"context"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

// MockSource serves a fixed in-memory catalog with deliberately weak copy
type MockSource struct{}

func (MockSource) Products(ctx context.Context) ([]models.Product, error) {
	return MockProducts(), nil
}

// MockProducts returns a fresh copy of the fixture products
func MockProducts() []models.Product {
	return []models.Product{
		{
			ID:             "prod_001",
			Title:          "Organic Face Cream",
			Description:    "Good cream for your face. Made with natural stuff.",
			Vendor:         "LuxeBeauty",
			ProductType:    "Skincare",
			Tags:           []string{"organic", "skincare"},
			SEOTitle:       "",
			SEODescription: "",
			Price:          49.99,
		},
		{
			ID:    "prod_002",
			Title: "Anti-Aging Serum Premium Formula",
			Description: "Our serum is really good and will make you look younger. " +
				"It has vitamins and other ingredients that are beneficial. " +
				"Many customers like it. Buy now.",
			Vendor:         "LuxeBeauty",
			ProductType:    "Skincare",
			Tags:           []string{"anti-aging", "serum", "premium"},
			SEOTitle:       "Anti-Aging Serum",
			SEODescription: "Good serum",
			Price:          89.99,
		},
	}
}
