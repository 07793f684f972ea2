package pipeline

import "github.com/Kavirubc/shopcopy/pkg/models"

// Update field names understood by the storefront integration
const (
	FieldDescription    = "description"
	FieldSEOTitle       = "seo_title"
	FieldSEODescription = "seo_description"
)

// ExportForUpdate builds the storefront update for one result. It returns
// nil when nothing was regenerated.
func ExportForUpdate(result *models.ProcessingResult) *models.UpdatePayload {
	opt := result.Optimization
	if opt == nil {
		return nil
	}

	updates := make(map[string]string, 3)
	if opt.OptimizedDescription != nil {
		updates[FieldDescription] = *opt.OptimizedDescription
	}
	if opt.OptimizedSEOTitle != nil {
		updates[FieldSEOTitle] = *opt.OptimizedSEOTitle
	}
	if opt.OptimizedSEODescription != nil {
		updates[FieldSEODescription] = *opt.OptimizedSEODescription
	}
	if len(updates) == 0 {
		return nil
	}

	return &models.UpdatePayload{ProductID: result.ProductID, Updates: updates}
}

// ExportAll collects the update payloads of a batch, in result order
func ExportAll(results []models.ProcessingResult) []models.UpdatePayload {
	payloads := make([]models.UpdatePayload, 0, len(results))
	for i := range results {
		if p := ExportForUpdate(&results[i]); p != nil {
			payloads = append(payloads, *p)
		}
	}
	return payloads
}
