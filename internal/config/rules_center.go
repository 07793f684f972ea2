package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ContentFetcher reads a single file from a remote repository
type ContentFetcher interface {
	FileContents(ctx context.Context, org, repo, path, ref string) ([]byte, error)
}

// SyncRulesFromCenter downloads the shared rules file named by cfg.RulesCenter,
// checks that it parses, and writes it to dest. It returns the parsed rules.
func SyncRulesFromCenter(ctx context.Context, fetcher ContentFetcher, cfg *Config, dest string) (*RulesFile, error) {
	center := cfg.RulesCenter
	if center.Repo == "" {
		return nil, fmt.Errorf("rules_center.repo is not configured")
	}

	parts := strings.Split(center.Repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid rules_center.repo %q (expected org/repo)", center.Repo)
	}

	data, err := fetcher.FileContents(ctx, parts[0], parts[1], center.Path, center.Ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rules from %s: %w", center.Repo, err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create rules directory: %w", err)
		}
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write rules file: %w", err)
	}

	return rules, nil
}
