package config

import (
	"os"
	"regexp"
	"strings"
)

// Matches ${NAME} and ${NAME:-fallback}
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*)?\}`)

// expandEnvVars resolves environment references in s. A reference to an unset
// variable without a fallback is left as written so Validate can report it.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		m := envRef.FindStringSubmatch(ref)
		if value, ok := os.LookupEnv(m[1]); ok && value != "" {
			return value
		}
		if m[2] != "" {
			return strings.TrimPrefix(m[2], ":-")
		}
		return ref
	})
}

// envFields lists the settings that may carry credentials or deployment paths
func envFields(cfg *Config) []*string {
	return []*string{
		&cfg.LLM.APIKey,
		&cfg.LLM.BaseURL,
		&cfg.Qdrant.URL,
		&cfg.Qdrant.APIKey,
		&cfg.Embedding.Primary.APIKey,
		&cfg.Embedding.Fallback.APIKey,
		&cfg.Catalog.Path,
		&cfg.Audit.RulesFile,
	}
}

func expandConfigEnvVars(cfg *Config) {
	for _, field := range envFields(cfg) {
		*field = expandEnvVars(*field)
	}
}
