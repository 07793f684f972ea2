package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned for unknown enum values supplied by callers
var ErrInvalidArgument = errors.New("invalid argument")

// IssueType tags a detected content defect
type IssueType string

const (
	IssueDescriptionLength     IssueType = "description_length"
	IssueMissingDescription    IssueType = "missing_description"
	IssueVagueLanguage         IssueType = "vague_language"
	IssueSEOTitle              IssueType = "seo_title"
	IssueSEODescriptionMissing IssueType = "seo_description_missing"
	IssueSEODescriptionShort   IssueType = "seo_description_short"
	IssueSEODescriptionLong    IssueType = "seo_description_long"
	IssueToneNotPremium        IssueType = "tone_not_premium"
	IssueMissingCTA            IssueType = "missing_cta"
	IssueMissingBenefits       IssueType = "missing_benefits"
	seoDescriptionIssuePrefix            = "seo_description"
)

// IsSEODescription reports whether the type is one of the seo_description variants
func (t IssueType) IsSEODescription() bool {
	return strings.HasPrefix(string(t), seoDescriptionIssuePrefix)
}

// Severity ranks how serious an issue is
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityNone     Severity = "none"
)

// Rank returns the ordinal of the severity (none=0 .. critical=4)
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Priority is the business-triage rank derived from an audit
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityNone     Priority = "none"
)

// Priorities lists every level from lowest to highest
var Priorities = []Priority{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Rank returns the position of p on the none < low < medium < high < critical ladder
func (p Priority) Rank() int {
	for i, level := range Priorities {
		if level == p {
			return i
		}
	}
	return -1
}

// ParsePriority converts an exact level name into a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if p.Rank() < 0 {
		return "", fmt.Errorf("%w: unknown priority level %q (want one of none, low, medium, high, critical)", ErrInvalidArgument, s)
	}
	return p, nil
}

// Issue is a single detected content defect
type Issue struct {
	Type     IssueType `json:"type"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
}

// AuditResult contains every issue found for one product
type AuditResult struct {
	ProductID    string   `json:"product_id"`
	ProductTitle string   `json:"product_title"`
	IssuesFound  int      `json:"issues_found"`
	Issues       []Issue  `json:"issues"`
	Severity     Severity `json:"severity"`
}

// HasIssue checks if the audit contains an issue of the given type
func (a *AuditResult) HasIssue(t IssueType) bool {
	for _, issue := range a.Issues {
		if issue.Type == t {
			return true
		}
	}
	return false
}
