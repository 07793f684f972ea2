package embedding

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Provider defines the interface for embedding generation
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Close() error
}

// maxTextLen keeps product text under roughly 1500 tokens
const maxTextLen = 6000

// PrepareProductText combines the copy fields of a product for embedding
func PrepareProductText(p *models.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", p.Title)
	if p.ProductType != "" {
		fmt.Fprintf(&sb, "Type: %s\n", p.ProductType)
	}
	if p.SEOTitle != "" {
		fmt.Fprintf(&sb, "SEO Title: %s\n", p.SEOTitle)
	}
	if p.SEODescription != "" {
		fmt.Fprintf(&sb, "SEO Description: %s\n", p.SEODescription)
	}
	fmt.Fprintf(&sb, "\nDescription: %s", CleanText(p.Description))

	return TruncateText(sb.String(), maxTextLen)
}

// TruncateText truncates text to maxLen characters
func TruncateText(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	return string([]rune(text)[:maxLen]) + "..."
}

// CleanText drops blank lines and trims the rest
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
