package content

import (
	"context"
	"log/slog"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Improvement notes recorded in Optimization.ImprovementsMade
const (
	NoteDescription    = "Rewrote product description with premium tone"
	NoteSEOTitle       = "Created SEO-optimized title"
	NoteSEODescription = "Created SEO meta description"
)

// descriptionTriggers are the issue types that cause a description rewrite
var descriptionTriggers = map[models.IssueType]bool{
	models.IssueDescriptionLength:  true,
	models.IssueMissingDescription: true,
	models.IssueVagueLanguage:      true,
	models.IssueToneNotPremium:     true,
	models.IssueMissingCTA:         true,
	models.IssueMissingBenefits:    true,
}

// Synthesizer decides which fields to regenerate and fills them
type Synthesizer struct {
	writer                  Writer
	fallback                *TemplateWriter
	maxSEODescriptionLength int
}

// Options configures a Synthesizer
type Options struct {
	MaxSEOTitleLength       int
	MaxSEODescriptionLength int
}

// NewSynthesizer creates a synthesizer. A nil writer uses the templates.
func NewSynthesizer(writer Writer, opts Options) *Synthesizer {
	if opts.MaxSEODescriptionLength <= 0 {
		opts.MaxSEODescriptionLength = 160
	}
	fallback := NewTemplateWriter(opts.MaxSEOTitleLength)
	if writer == nil {
		writer = fallback
	}
	return &Synthesizer{
		writer:                  writer,
		fallback:                fallback,
		maxSEODescriptionLength: opts.MaxSEODescriptionLength,
	}
}

// Synthesize builds the optimization for a product from its audit issues.
// Each field is gated independently; untriggered fields stay nil.
func (s *Synthesizer) Synthesize(ctx context.Context, p *models.Product, issues []models.Issue) *models.Optimization {
	opt := &models.Optimization{
		ProductID:           p.ID,
		OriginalDescription: p.Description,
		ImprovementsMade:    []string{},
	}

	var rewriteDescription, rewriteTitle, rewriteSEODescription bool
	for _, issue := range issues {
		if descriptionTriggers[issue.Type] {
			rewriteDescription = true
		}
		if issue.Type == models.IssueSEOTitle {
			rewriteTitle = true
		}
		if issue.Type.IsSEODescription() {
			rewriteSEODescription = true
		}
	}

	cat := Classify(p)

	if rewriteDescription {
		text := s.write(ctx, p, "description", func(w Writer) (string, error) {
			return w.WriteDescription(ctx, p, cat)
		})
		opt.OptimizedDescription = &text
		opt.ImprovementsMade = append(opt.ImprovementsMade, NoteDescription)
	}

	if rewriteTitle {
		text := s.write(ctx, p, "seo_title", func(w Writer) (string, error) {
			return w.WriteSEOTitle(ctx, p, cat)
		})
		opt.OptimizedSEOTitle = &text
		opt.ImprovementsMade = append(opt.ImprovementsMade, NoteSEOTitle)
	}

	if rewriteSEODescription {
		text := s.write(ctx, p, "seo_description", func(w Writer) (string, error) {
			return w.WriteSEODescription(ctx, p, cat)
		})
		text = truncateRunes(text, s.maxSEODescriptionLength)
		opt.OptimizedSEODescription = &text
		opt.ImprovementsMade = append(opt.ImprovementsMade, NoteSEODescription)
	}

	return opt
}

// write runs fn with the configured writer and falls back to the templates on error
func (s *Synthesizer) write(ctx context.Context, p *models.Product, field string, fn func(Writer) (string, error)) string {
	text, err := fn(s.writer)
	if err == nil {
		return text
	}

	slog.WarnContext(ctx, "copy writer failed, using template", "product_id", p.ID, "field", field, "error", err)
	text, _ = fn(s.fallback)
	return text
}
