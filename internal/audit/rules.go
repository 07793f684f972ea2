package audit

import (
	"github.com/Kavirubc/shopcopy/internal/config"
)

// Rules holds the thresholds and keyword lists the auditor evaluates
type Rules struct {
	MinDescriptionLength    int
	MinSEOTitleLength       int
	MinSEODescriptionLength int
	MaxSEODescriptionLength int

	VagueTerms      []string
	PremiumKeywords []string
	CTAKeywords     []string
	BenefitKeywords []string
}

// DefaultRules returns the built-in rule set
func DefaultRules() Rules {
	return RulesFromConfig(&config.Default().Audit)
}

// RulesFromConfig builds a rule set from the audit config section
func RulesFromConfig(cfg *config.AuditConfig) Rules {
	return Rules{
		MinDescriptionLength:    cfg.MinDescriptionLength,
		MinSEOTitleLength:       cfg.MinSEOTitleLength,
		MinSEODescriptionLength: cfg.MinSEODescriptionLength,
		MaxSEODescriptionLength: cfg.MaxSEODescriptionLength,
		VagueTerms:              cfg.Keywords[config.KeywordsVague],
		PremiumKeywords:         cfg.Keywords[config.KeywordsPremium],
		CTAKeywords:             cfg.Keywords[config.KeywordsCTA],
		BenefitKeywords:         cfg.Keywords[config.KeywordsBenefit],
	}
}
