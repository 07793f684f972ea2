package audit

import "github.com/Kavirubc/shopcopy/pkg/models"

// AggregateSeverity returns the highest severity present, or none for no issues
func AggregateSeverity(issues []models.Issue) models.Severity {
	if len(issues) == 0 {
		return models.SeverityNone
	}

	worst := models.SeverityLow
	for _, issue := range issues {
		if issue.Severity.Rank() > worst.Rank() {
			worst = issue.Severity
		}
	}
	return worst
}
