package pipeline

import "github.com/Kavirubc/shopcopy/pkg/models"

// DerivePriority maps an audit to a triage priority. Branches are checked
// top to bottom and the first match wins, so a count threshold can raise
// the priority above what the severity alone would give.
func DerivePriority(audit models.AuditResult) models.Priority {
	switch {
	case audit.Severity == models.SeverityCritical:
		return models.PriorityCritical
	case audit.Severity == models.SeverityHigh || audit.IssuesFound >= 5:
		return models.PriorityHigh
	case audit.Severity == models.SeverityMedium || audit.IssuesFound >= 3:
		return models.PriorityMedium
	case audit.IssuesFound > 0:
		return models.PriorityLow
	default:
		return models.PriorityNone
	}
}

// FilterByPriority keeps results at or above threshold, preserving order
func FilterByPriority(results []models.ProcessingResult, threshold models.Priority) []models.ProcessingResult {
	filtered := make([]models.ProcessingResult, 0, len(results))
	for _, r := range results {
		if r.Priority.Rank() >= threshold.Rank() {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
