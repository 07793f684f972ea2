package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesFile is a shareable keyword rule set that overrides the audit section
type RulesFile struct {
	Version                 int                 `yaml:"version"`
	MinDescriptionLength    int                 `yaml:"min_description_length,omitempty"`
	MinSEOTitleLength       int                 `yaml:"min_seo_title_length,omitempty"`
	MinSEODescriptionLength int                 `yaml:"min_seo_description_length,omitempty"`
	MaxSEODescriptionLength int                 `yaml:"max_seo_description_length,omitempty"`
	Keywords                map[string][]string `yaml:"keywords"`
}

// ParseRules decodes and checks a rules document
func ParseRules(data []byte) (*RulesFile, error) {
	var rules RulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if rules.Version > 1 {
		return nil, fmt.Errorf("unsupported rules file version %d", rules.Version)
	}
	for name, words := range rules.Keywords {
		if !isKnownKeywordList(name) {
			return nil, fmt.Errorf("rules file: unknown keyword list %q", name)
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("rules file: keyword list %q is empty", name)
		}
	}

	return &rules, nil
}

// LoadRulesFile reads a rules document from disk
func LoadRulesFile(path string) (*RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRules(data)
}

// ApplyTo overrides the audit settings that the rules file sets
func (r *RulesFile) ApplyTo(audit *AuditConfig) {
	if r.MinDescriptionLength > 0 {
		audit.MinDescriptionLength = r.MinDescriptionLength
	}
	if r.MinSEOTitleLength > 0 {
		audit.MinSEOTitleLength = r.MinSEOTitleLength
	}
	if r.MinSEODescriptionLength > 0 {
		audit.MinSEODescriptionLength = r.MinSEODescriptionLength
	}
	if r.MaxSEODescriptionLength > 0 {
		audit.MaxSEODescriptionLength = r.MaxSEODescriptionLength
	}

	if len(r.Keywords) > 0 && audit.Keywords == nil {
		audit.Keywords = map[string][]string{}
	}
	for name, words := range r.Keywords {
		audit.Keywords[name] = append([]string(nil), words...)
	}
}
