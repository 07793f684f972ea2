package models

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidProduct is returned when a product breaks the input contract
// (missing identifier or title).
var ErrInvalidProduct = errors.New("invalid product")

// Product represents a storefront product with its marketing copy
type Product struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Vendor         string   `json:"vendor"`
	ProductType    string   `json:"product_type"`
	Tags           []string `json:"tags"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
	Price          float64  `json:"price"`
}

// Validate checks the fields every downstream component relies on
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: product %s has no title", ErrInvalidProduct, p.ID)
	}
	return nil
}

// UUID generates a deterministic UUID based on store/id
func (p *Product) UUID(store string) string {
	return ProductUUID(store, p.ID)
}

// ContentHash returns a SHA256 hash of the copy fields for change detection
func (p *Product) ContentHash() string {
	h := sha256.Sum256([]byte(p.Title + "\x00" + p.Description + "\x00" + p.SEOTitle + "\x00" + p.SEODescription))
	return hex.EncodeToString(h[:])
}

// ProductUUID generates a deterministic UUID from product identity
func ProductUUID(store, id string) string {
	data := fmt.Sprintf("%s/product#%s", store, id)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(data)).String()
}
