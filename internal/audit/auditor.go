package audit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Auditor checks product copy against a fixed rule set
type Auditor struct {
	rules Rules
}

// NewAuditor creates a new auditor
func NewAuditor(rules Rules) *Auditor {
	return &Auditor{rules: rules}
}

// Rules returns the rule set in use
func (a *Auditor) Rules() Rules {
	return a.rules
}

// Audit evaluates one product. Missing text fields count as empty strings.
func (a *Auditor) Audit(p *models.Product) models.AuditResult {
	var issues []models.Issue

	issues = append(issues, a.checkDescription(p.Description)...)
	issues = append(issues, a.checkSEOFields(p.SEOTitle, p.SEODescription)...)
	issues = append(issues, a.checkTone(p.Description)...)
	issues = append(issues, a.checkConversionElements(p.Description)...)

	if issues == nil {
		issues = []models.Issue{}
	}

	return models.AuditResult{
		ProductID:    p.ID,
		ProductTitle: p.Title,
		IssuesFound:  len(issues),
		Issues:       issues,
		Severity:     AggregateSeverity(issues),
	}
}

// checkDescription covers length, presence and vague wording.
// An empty description reports both description_length and missing_description.
func (a *Auditor) checkDescription(description string) []models.Issue {
	var issues []models.Issue

	if n := utf8.RuneCountInString(description); n < a.rules.MinDescriptionLength {
		issues = append(issues, models.Issue{
			Type:     models.IssueDescriptionLength,
			Severity: models.SeverityHigh,
			Message:  fmt.Sprintf("Description too short (%d chars). Minimum: %d", n, a.rules.MinDescriptionLength),
		})
	}

	if strings.TrimSpace(description) == "" {
		issues = append(issues, models.Issue{
			Type:     models.IssueMissingDescription,
			Severity: models.SeverityCritical,
			Message:  "Product description is missing",
		})
	}

	if found := matchingTerms(description, a.rules.VagueTerms); len(found) > 0 {
		issues = append(issues, models.Issue{
			Type:     models.IssueVagueLanguage,
			Severity: models.SeverityMedium,
			Message:  "Contains vague terms: " + strings.Join(found, ", "),
		})
	}

	return issues
}

func (a *Auditor) checkSEOFields(seoTitle, seoDescription string) []models.Issue {
	var issues []models.Issue

	if seoTitle == "" || utf8.RuneCountInString(seoTitle) < a.rules.MinSEOTitleLength {
		issues = append(issues, models.Issue{
			Type:     models.IssueSEOTitle,
			Severity: models.SeverityHigh,
			Message:  "SEO title missing or too short",
		})
	}

	n := utf8.RuneCountInString(seoDescription)
	switch {
	case seoDescription == "":
		issues = append(issues, models.Issue{
			Type:     models.IssueSEODescriptionMissing,
			Severity: models.SeverityHigh,
			Message:  "SEO description is missing",
		})
	case n < a.rules.MinSEODescriptionLength:
		issues = append(issues, models.Issue{
			Type:     models.IssueSEODescriptionShort,
			Severity: models.SeverityMedium,
			Message:  fmt.Sprintf("SEO description too short (%d chars)", n),
		})
	case n > a.rules.MaxSEODescriptionLength:
		issues = append(issues, models.Issue{
			Type:     models.IssueSEODescriptionLong,
			Severity: models.SeverityLow,
			Message:  fmt.Sprintf("SEO description too long (%d chars). Max: %d", n, a.rules.MaxSEODescriptionLength),
		})
	}

	return issues
}

func (a *Auditor) checkTone(description string) []models.Issue {
	if containsAny(description, a.rules.PremiumKeywords) {
		return nil
	}
	return []models.Issue{{
		Type:     models.IssueToneNotPremium,
		Severity: models.SeverityMedium,
		Message:  "Missing premium/luxury brand tone",
	}}
}

func (a *Auditor) checkConversionElements(description string) []models.Issue {
	var issues []models.Issue

	if !containsAny(description, a.rules.CTAKeywords) {
		issues = append(issues, models.Issue{
			Type:     models.IssueMissingCTA,
			Severity: models.SeverityMedium,
			Message:  "Missing clear call-to-action",
		})
	}

	if !containsAny(description, a.rules.BenefitKeywords) {
		issues = append(issues, models.Issue{
			Type:     models.IssueMissingBenefits,
			Severity: models.SeverityLow,
			Message:  "Could emphasize customer benefits more clearly",
		})
	}

	return issues
}

// containsAny checks if text contains any of the keywords (case-insensitive)
func containsAny(text string, keywords []string) bool {
	lowerText := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// matchingTerms returns the terms found in text, in list order, each at most once
func matchingTerms(text string, terms []string) []string {
	lowerText := strings.ToLower(text)
	seen := make(map[string]bool, len(terms))
	var found []string
	for _, term := range terms {
		if seen[term] {
			continue
		}
		if strings.Contains(lowerText, strings.ToLower(term)) {
			seen[term] = true
			found = append(found, term)
		}
	}
	return found
}
