package models

// Optimization holds the regenerated copy for a product.
// Fields left nil were not regenerated.
type Optimization struct {
	ProductID               string   `json:"product_id"`
	OriginalDescription     string   `json:"original_description"`
	OptimizedDescription    *string  `json:"optimized_description"`
	OptimizedSEOTitle       *string  `json:"optimized_seo_title"`
	OptimizedSEODescription *string  `json:"optimized_seo_description"`
	ImprovementsMade        []string `json:"improvements_made"`
}

// SimilarProduct is a catalog product whose copy closely matches another product
type SimilarProduct struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
}

// ProcessingResult is the per-product output of the pipeline
type ProcessingResult struct {
	ProductID       string           `json:"product_id"`
	ProductTitle    string           `json:"product_title"`
	Audit           AuditResult      `json:"audit"`
	Optimization    *Optimization    `json:"optimization"`
	ActionRequired  bool             `json:"action_required"`
	Priority        Priority         `json:"priority"`
	SimilarProducts []SimilarProduct `json:"similar_products,omitempty"`
	Indexed         bool             `json:"indexed,omitempty"`
}

// Statistics summarizes a processed batch
type Statistics struct {
	TotalProductsProcessed int              `json:"total_products_processed"`
	ProductsWithIssues     int              `json:"products_with_issues"`
	ProductsOptimized      int              `json:"products_optimized"`
	TotalIssuesFound       int              `json:"total_issues_found"`
	PriorityBreakdown      map[Priority]int `json:"priority_breakdown"`
	CompletionRate         string           `json:"completion_rate"`
}

// UpdatePayload is the handoff to the storefront update integration
type UpdatePayload struct {
	ProductID string            `json:"product_id"`
	Updates   map[string]string `json:"updates"`
}

// IndexStats contains statistics from an indexing operation
type IndexStats struct {
	TotalProducts int `json:"total_products"`
	Indexed       int `json:"indexed"`
	Skipped       int `json:"skipped"`
	Errors        int `json:"errors"`
	DurationMs    int `json:"duration_ms"`
}

// SearchResult represents a product found via vector search
type SearchResult struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"` // Similarity score (0-1)
}
