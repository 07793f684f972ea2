package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(cfg *Config) []error {
	var errs []error

	// Audit thresholds
	thresholds := []struct {
		field string
		value int
	}{
		{"audit.min_description_length", cfg.Audit.MinDescriptionLength},
		{"audit.min_seo_title_length", cfg.Audit.MinSEOTitleLength},
		{"audit.min_seo_description_length", cfg.Audit.MinSEODescriptionLength},
		{"audit.max_seo_description_length", cfg.Audit.MaxSEODescriptionLength},
	}
	for _, th := range thresholds {
		if th.value <= 0 {
			errs = append(errs, ValidationError{th.field, "must be positive"})
		}
	}
	if cfg.Audit.MinSEODescriptionLength > cfg.Audit.MaxSEODescriptionLength {
		errs = append(errs, ValidationError{"audit.min_seo_description_length", "must not exceed max_seo_description_length"})
	}

	for _, name := range KeywordListNames {
		if len(cfg.Audit.Keywords[name]) == 0 {
			errs = append(errs, ValidationError{"audit.keywords." + name, "must not be empty"})
		}
	}
	for name := range cfg.Audit.Keywords {
		if !isKnownKeywordList(name) {
			errs = append(errs, ValidationError{"audit.keywords." + name, "unknown keyword list"})
		}
	}

	// Content writer
	switch cfg.Content.Writer {
	case "template":
	case "llm":
		if cfg.LLM.APIKey == "" {
			errs = append(errs, ValidationError{"llm.api_key", "required when content.writer is 'llm'"})
		}
		if cfg.LLM.Provider == "" {
			errs = append(errs, ValidationError{"llm.provider", "required when content.writer is 'llm'"})
		}
	default:
		errs = append(errs, ValidationError{"content.writer", "must be 'template' or 'llm'"})
	}
	if cfg.LLM.Provider != "" && cfg.LLM.Provider != "gemini" && cfg.LLM.Provider != "openai" {
		errs = append(errs, ValidationError{"llm.provider", "must be 'gemini' or 'openai'"})
	}

	// Catalog
	switch cfg.Catalog.Source {
	case "mock":
	case "file":
		if cfg.Catalog.Path == "" {
			errs = append(errs, ValidationError{"catalog.path", "required when catalog.source is 'file'"})
		}
	default:
		errs = append(errs, ValidationError{"catalog.source", "must be 'mock' or 'file'"})
	}

	// Duplicate detection (only if enabled)
	if cfg.Duplicates.Enabled {
		if cfg.Qdrant.URL == "" {
			errs = append(errs, ValidationError{"qdrant.url", "required when duplicates are enabled"})
		}
		if cfg.Embedding.Primary.Provider == "" {
			errs = append(errs, ValidationError{"embedding.primary.provider", "required when duplicates are enabled"})
		} else if cfg.Embedding.Primary.Provider != "gemini" && cfg.Embedding.Primary.Provider != "openai" {
			errs = append(errs, ValidationError{"embedding.primary.provider", "must be 'gemini' or 'openai'"})
		}
		if cfg.Embedding.Primary.APIKey == "" {
			errs = append(errs, ValidationError{"embedding.primary.api_key", "required when duplicates are enabled"})
		}
		if cfg.Duplicates.Threshold < 0 || cfg.Duplicates.Threshold > 1 {
			errs = append(errs, ValidationError{"duplicates.threshold", "must be between 0 and 1"})
		}
	}

	if cfg.Pipeline.Concurrency < 1 {
		errs = append(errs, ValidationError{"pipeline.concurrency", "must be at least 1"})
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{"logging.level", "must be one of debug, info, warn, error"})
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		errs = append(errs, ValidationError{"logging.format", "must be 'text' or 'json'"})
	}

	if cfg.RulesCenter.Repo != "" && !strings.Contains(cfg.RulesCenter.Repo, "/") {
		errs = append(errs, ValidationError{"rules_center.repo", "must be in format 'org/repo'"})
	}

	if cfg.LLM.MaxTokens < 0 {
		errs = append(errs, ValidationError{"llm.max_tokens", "must not be negative"})
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		errs = append(errs, ValidationError{"llm.temperature", "must be between 0 and 2"})
	}
	if cfg.RateLimits.LLMRPS < 0 {
		errs = append(errs, ValidationError{"rate_limits.llm_requests_per_second", "must not be negative"})
	}

	return errs
}

func isKnownKeywordList(name string) bool {
	for _, known := range KeywordListNames {
		if name == known {
			return true
		}
	}
	return false
}
