package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the full application configuration
type Config struct {
	Store       string            `yaml:"store"`
	Audit       AuditConfig       `yaml:"audit"`
	Content     ContentConfig     `yaml:"content"`
	LLM         LLMConfig         `yaml:"llm"`
	Embedding   EmbeddingConfig   `yaml:"embedding"`
	Qdrant      QdrantConfig      `yaml:"qdrant"`
	Duplicates  DuplicatesConfig  `yaml:"duplicates"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	RulesCenter RulesCenterConfig `yaml:"rules_center"`
	RateLimits  RateLimitsConfig  `yaml:"rate_limits"`
}

// AuditConfig contains the thresholds and keyword lists used by the auditor
type AuditConfig struct {
	MinDescriptionLength    int                 `yaml:"min_description_length"`
	MinSEOTitleLength       int                 `yaml:"min_seo_title_length"`
	MinSEODescriptionLength int                 `yaml:"min_seo_description_length"`
	MaxSEODescriptionLength int                 `yaml:"max_seo_description_length"`
	Keywords                map[string][]string `yaml:"keywords"`
	RulesFile               string              `yaml:"rules_file"`
}

// Keyword list names
const (
	KeywordsVague   = "vague"
	KeywordsPremium = "premium"
	KeywordsCTA     = "cta"
	KeywordsBenefit = "benefit"
)

// KeywordListNames lists every keyword list the auditor reads
var KeywordListNames = []string{KeywordsVague, KeywordsPremium, KeywordsCTA, KeywordsBenefit}

// ContentConfig contains replacement copy settings
type ContentConfig struct {
	Writer               string `yaml:"writer"` // template | llm
	MaxSEOTitleLength    int    `yaml:"max_seo_title_length"`
	MaxSEODescriptionLen int    `yaml:"max_seo_description_length"`
}

// LLMConfig contains LLM provider settings for copy generation
type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"` // OpenAI-compatible endpoints only
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// QdrantConfig contains Qdrant connection settings
type QdrantConfig struct {
	URL              string `yaml:"url"`
	APIKey           string `yaml:"api_key"`
	UseTLS           bool   `yaml:"use_tls"`
	CollectionPrefix string `yaml:"collection_prefix"`
}

// EmbeddingConfig contains embedding provider settings
type EmbeddingConfig struct {
	Primary  ProviderConfig `yaml:"primary"`
	Fallback ProviderConfig `yaml:"fallback"`
}

// ProviderConfig contains settings for an embedding provider
type ProviderConfig struct {
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	Dimensions int    `yaml:"dimensions"`
}

// DuplicatesConfig controls near-duplicate copy detection across the catalog
type DuplicatesConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Threshold float64 `yaml:"threshold"`
	MaxShown  int     `yaml:"max_shown"`
}

// CatalogConfig selects where products are read from
type CatalogConfig struct {
	Source string `yaml:"source"` // mock | file
	Path   string `yaml:"path"`
}

// PipelineConfig contains the step order and batch concurrency
type PipelineConfig struct {
	Steps       []string `yaml:"steps"`
	Concurrency int      `yaml:"concurrency"`
}

// ServerConfig contains HTTP serving settings
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// RulesCenterConfig points at a repository file holding shared keyword rules
type RulesCenterConfig struct {
	Repo     string `yaml:"repo"` // org/repo
	Path     string `yaml:"path"`
	Ref      string `yaml:"ref"`
	TokenEnv string `yaml:"token_env"`
}

// RateLimitsConfig contains rate limiting settings
type RateLimitsConfig struct {
	LLMRPS       float64 `yaml:"llm_requests_per_second"`
	EmbeddingRPS float64 `yaml:"embedding_requests_per_second"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses config from the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&cfg)

	// A rules file that has not been synced yet leaves the built-in keywords in place
	if cfg.Audit.RulesFile != "" {
		cfg.Audit.RulesFile = resolveRelative(path, cfg.Audit.RulesFile)
		rules, err := LoadRulesFile(cfg.Audit.RulesFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Warn("rules file not found, using defaults", "path", cfg.Audit.RulesFile)
		case err != nil:
			return nil, err
		default:
			rules.ApplyTo(&cfg.Audit)
		}
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadOrDefault loads the config at path, or returns defaults when path is empty
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// FindConfigPath looks for config in common locations
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	paths := []string{
		"shopcopy.yaml",
		"shopcopy.yml",
		".shopcopy/config.yaml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, ".config", "shopcopy", "config.yaml")
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}

	return ""
}

func resolveRelative(configPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

// DefaultKeywords returns fresh copies of the built-in keyword lists
func DefaultKeywords() map[string][]string {
	return map[string][]string{
		KeywordsVague:   {"good", "nice", "stuff", "things", "really"},
		KeywordsPremium: {"premium", "luxury", "exclusive", "professional", "exceptional"},
		KeywordsCTA:     {"discover", "experience", "transform", "elevate", "shop now", "order", "buy"},
		KeywordsBenefit: {"benefits", "results", "improves", "enhances", "reduces", "promotes"},
	}
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Store == "" {
		cfg.Store = "default"
	}

	if cfg.Audit.MinDescriptionLength == 0 {
		cfg.Audit.MinDescriptionLength = 100
	}
	if cfg.Audit.MinSEOTitleLength == 0 {
		cfg.Audit.MinSEOTitleLength = 30
	}
	if cfg.Audit.MinSEODescriptionLength == 0 {
		cfg.Audit.MinSEODescriptionLength = 80
	}
	if cfg.Audit.MaxSEODescriptionLength == 0 {
		cfg.Audit.MaxSEODescriptionLength = 160
	}
	if cfg.Audit.Keywords == nil {
		cfg.Audit.Keywords = map[string][]string{}
	}
	// Only absent lists get defaults; an explicit empty list is left for Validate to reject
	for name, words := range DefaultKeywords() {
		if _, ok := cfg.Audit.Keywords[name]; !ok {
			cfg.Audit.Keywords[name] = words
		}
	}

	if cfg.Content.Writer == "" {
		cfg.Content.Writer = "template"
	}
	if cfg.Content.MaxSEOTitleLength == 0 {
		cfg.Content.MaxSEOTitleLength = 60
	}
	if cfg.Content.MaxSEODescriptionLen == 0 {
		cfg.Content.MaxSEODescriptionLen = 160
	}

	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.7
	}

	if cfg.Embedding.Primary.Dimensions == 0 {
		cfg.Embedding.Primary.Dimensions = 768
	}
	if cfg.Embedding.Fallback.Dimensions == 0 {
		cfg.Embedding.Fallback.Dimensions = 768
	}
	if cfg.Qdrant.CollectionPrefix == "" {
		cfg.Qdrant.CollectionPrefix = "shopcopy"
	}
	if cfg.Duplicates.Threshold == 0 {
		cfg.Duplicates.Threshold = 0.92
	}
	if cfg.Duplicates.MaxShown == 0 {
		cfg.Duplicates.MaxShown = 3
	}

	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "mock"
	}
	if cfg.Pipeline.Concurrency == 0 {
		cfg.Pipeline.Concurrency = 1
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	if cfg.RulesCenter.Path == "" {
		cfg.RulesCenter.Path = "shopcopy-rules.yaml"
	}
	if cfg.RulesCenter.TokenEnv == "" {
		cfg.RulesCenter.TokenEnv = "GITHUB_TOKEN"
	}

	if cfg.RateLimits.LLMRPS == 0 {
		cfg.RateLimits.LLMRPS = 1
	}
	if cfg.RateLimits.EmbeddingRPS == 0 {
		cfg.RateLimits.EmbeddingRPS = 5
	}
}

// CollectionName returns the Qdrant collection holding this store's product copy
func (cfg *Config) CollectionName() string {
	return cfg.Qdrant.CollectionPrefix + "-" + cfg.Store
}
