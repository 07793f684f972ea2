package pipeline

import (
	"fmt"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Statistics summarizes a processed batch. Every priority level appears in
// the breakdown, zero-filled.
func Statistics(results []models.ProcessingResult) models.Statistics {
	stats := models.Statistics{
		TotalProductsProcessed: len(results),
		PriorityBreakdown:      make(map[models.Priority]int, len(models.Priorities)),
	}
	for _, p := range models.Priorities {
		stats.PriorityBreakdown[p] = 0
	}

	for _, r := range results {
		if r.Audit.IssuesFound > 0 {
			stats.ProductsWithIssues++
		}
		if r.Optimization != nil {
			stats.ProductsOptimized++
		}
		stats.TotalIssuesFound += r.Audit.IssuesFound
		stats.PriorityBreakdown[r.Priority]++
	}

	// A batch either completes or fails as a whole, so any results mean 100%
	rate := 0.0
	if len(results) > 0 {
		rate = 100
	}
	stats.CompletionRate = fmt.Sprintf("%.1f%%", rate)
	return stats
}
