package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kavirubc/shopcopy/internal/llm"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Writer produces replacement copy for a single field
type Writer interface {
	WriteDescription(ctx context.Context, p *models.Product, cat Category) (string, error)
	WriteSEOTitle(ctx context.Context, p *models.Product, cat Category) (string, error)
	WriteSEODescription(ctx context.Context, p *models.Product, cat Category) (string, error)
}

// TemplateWriter fills fixed templates. It never fails.
type TemplateWriter struct {
	MaxSEOTitleLength int
}

// NewTemplateWriter creates a template writer with the given SEO title limit
func NewTemplateWriter(maxSEOTitleLength int) *TemplateWriter {
	if maxSEOTitleLength <= 0 {
		maxSEOTitleLength = 60
	}
	return &TemplateWriter{MaxSEOTitleLength: maxSEOTitleLength}
}

func (w *TemplateWriter) WriteDescription(_ context.Context, p *models.Product, cat Category) (string, error) {
	return buildDescription(p.Title, p.ProductType, cat.DescriptionKind()), nil
}

func (w *TemplateWriter) WriteSEOTitle(_ context.Context, p *models.Product, cat Category) (string, error) {
	return buildSEOTitle(p.Title, p.Vendor, cat.Kind, w.MaxSEOTitleLength), nil
}

func (w *TemplateWriter) WriteSEODescription(_ context.Context, p *models.Product, cat Category) (string, error) {
	return buildSEODescription(p.Title, cat.Kind), nil
}

const copywriterSystem = `You are a copywriter for a premium e-commerce brand.
Write in a premium, warm, trustworthy tone. Respond with the requested text only:
no preamble, no quotes, no markdown headings.`

// LLMWriter delegates copy generation to a text-generation provider
type LLMWriter struct {
	provider llm.Provider
}

// NewLLMWriter creates a writer backed by the given provider
func NewLLMWriter(provider llm.Provider) *LLMWriter {
	return &LLMWriter{provider: provider}
}

func (w *LLMWriter) WriteDescription(ctx context.Context, p *models.Product, cat Category) (string, error) {
	prompt := fmt.Sprintf(`Create a premium, conversion-optimized product description for:

Product: %s
Type: %s
Price: $%.2f
Vendor: %s

Requirements:
- Premium, warm, trustworthy tone
- 150-250 words
- Highlight benefits, not just features
- Include clear call-to-action
- SEO-friendly`,
		orDefault(p.Title, defaultTitle), orDefault(p.ProductType, "Item"), p.Price, p.Vendor)

	return w.complete(ctx, prompt)
}

func (w *LLMWriter) WriteSEOTitle(ctx context.Context, p *models.Product, cat Category) (string, error) {
	prompt := fmt.Sprintf(`Create an SEO-optimized title (50-60 chars) for:
Product: %s
Brand: %s
Include key benefit and brand if possible.`,
		orDefault(p.Title, defaultTitle), p.Vendor)

	return w.complete(ctx, prompt)
}

func (w *LLMWriter) WriteSEODescription(ctx context.Context, p *models.Product, cat Category) (string, error) {
	prompt := fmt.Sprintf(`Create an SEO meta description (120-160 chars) for:
Product: %s
Make it compelling and include a call-to-action.`,
		orDefault(p.Title, defaultTitle))

	return w.complete(ctx, prompt)
}

func (w *LLMWriter) complete(ctx context.Context, prompt string) (string, error) {
	text, err := w.provider.CompleteWithSystem(ctx, copywriterSystem, prompt)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	text = strings.Trim(text, `"`)
	if text == "" {
		return "", fmt.Errorf("provider returned empty text")
	}
	return text, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
