package content

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

func issuesOf(types ...models.IssueType) []models.Issue {
	issues := make([]models.Issue, len(types))
	for i, t := range types {
		issues[i] = models.Issue{Type: t}
	}
	return issues
}

var faceCream = &models.Product{
	ID:          "prod_001",
	Title:       "Organic Face Cream",
	Description: "Good cream for your face. Made with natural stuff.",
	Vendor:      "LuxeBeauty",
	ProductType: "Skincare",
}

var serum = &models.Product{
	ID:             "prod_002",
	Title:          "Anti-Aging Serum Premium Formula",
	Vendor:         "LuxeBeauty",
	ProductType:    "Skincare",
	SEOTitle:       "Anti-Aging Serum",
	SEODescription: "Good serum",
}

func TestSynthesize_EndToEnd(t *testing.T) {
	s := NewSynthesizer(nil, Options{})
	issues := issuesOf(
		models.IssueDescriptionLength,
		models.IssueVagueLanguage,
		models.IssueSEOTitle,
		models.IssueSEODescriptionMissing,
		models.IssueToneNotPremium,
		models.IssueMissingCTA,
		models.IssueMissingBenefits,
	)

	opt := s.Synthesize(context.Background(), faceCream, issues)

	if opt.ProductID != "prod_001" || opt.OriginalDescription != faceCream.Description {
		t.Errorf("identity fields = %q / %q", opt.ProductID, opt.OriginalDescription)
	}
	if opt.OptimizedDescription == nil || opt.OptimizedSEOTitle == nil || opt.OptimizedSEODescription == nil {
		t.Fatalf("all three fields should be set: %+v", opt)
	}
	wantNotes := []string{NoteDescription, NoteSEOTitle, NoteSEODescription}
	if !reflect.DeepEqual(opt.ImprovementsMade, wantNotes) {
		t.Errorf("ImprovementsMade = %v, want %v", opt.ImprovementsMade, wantNotes)
	}

	if got := *opt.OptimizedSEOTitle; got != "Organic Face Cream | Nourishing & Anti-Aging | LuxeBeauty" {
		t.Errorf("seo title = %q", got)
	}
	wantSEODesc := "Experience premium organic face cream with natural ingredients. " +
		"Nourishes, protects, and rejuvenates your skin. Shop our luxury skincare collection."
	if got := *opt.OptimizedSEODescription; got != wantSEODesc {
		t.Errorf("seo description = %q", got)
	}

	desc := *opt.OptimizedDescription
	if !strings.HasPrefix(desc, "Discover the exceptional quality of our Organic Face Cream, a premium skincare crafted") {
		t.Errorf("description hook = %q", desc[:90])
	}
	if !strings.Contains(desc, "Experience transformative results") {
		t.Errorf("description should use the cream paragraph")
	}
	if !strings.Contains(desc, "**Key Benefits:**\n• Premium, professionally-formulated ingredients") {
		t.Errorf("description should contain the key benefits list")
	}
	if !strings.HasSuffix(desc, "Elevate your skincare routine today. Experience the difference that premium quality makes.") {
		t.Errorf("description should end with the closing call-to-action")
	}
}

func TestSynthesize_SerumTemplates(t *testing.T) {
	s := NewSynthesizer(nil, Options{})
	opt := s.Synthesize(context.Background(), serum, issuesOf(
		models.IssueVagueLanguage, models.IssueSEOTitle, models.IssueSEODescriptionShort))

	// Skincare product type selects the cream paragraph for the description
	if !strings.Contains(*opt.OptimizedDescription, "Experience transformative results") {
		t.Errorf("skincare type should select the cream paragraph")
	}
	// Vendor dropped because the full title exceeds 60 characters; the rest is kept as is
	if got := *opt.OptimizedSEOTitle; got != "Anti-Aging Serum Premium Formula | Professional Anti-Aging Treatment" {
		t.Errorf("seo title = %q", got)
	}
	wantSEODesc := "Professional-grade anti-aging serum premium formula delivers powerful anti-aging results. " +
		"Reduce fine lines and restore radiance. Premium quality guaranteed."
	if got := *opt.OptimizedSEODescription; got != wantSEODesc {
		t.Errorf("seo description = %q", got)
	}
}

func TestSynthesize_GeneralTemplates(t *testing.T) {
	s := NewSynthesizer(nil, Options{})
	p := &models.Product{ID: "p", Title: "Silk Pillowcase", ProductType: "Bedding"}
	opt := s.Synthesize(context.Background(), p, issuesOf(models.IssueMissingCTA, models.IssueSEOTitle, models.IssueSEODescriptionLong))

	if !strings.Contains(*opt.OptimizedDescription, "Meticulously designed to deliver exceptional results") {
		t.Errorf("general product should use the generic paragraph")
	}
	if !strings.Contains(*opt.OptimizedDescription, "a premium bedding crafted") {
		t.Errorf("product type should be lower-cased in the hook")
	}
	if got := *opt.OptimizedSEOTitle; got != "Silk Pillowcase | Premium Quality" {
		t.Errorf("seo title = %q", got)
	}
	if got := *opt.OptimizedSEODescription; !strings.HasPrefix(got, "Discover our premium silk pillowcase - exceptional quality") {
		t.Errorf("seo description = %q", got)
	}
}

func TestSynthesize_DescriptionDefaults(t *testing.T) {
	s := NewSynthesizer(nil, Options{})
	opt := s.Synthesize(context.Background(), &models.Product{ID: "p"}, issuesOf(models.IssueMissingDescription))

	if !strings.HasPrefix(*opt.OptimizedDescription, "Discover the exceptional quality of our Product, a premium item crafted") {
		t.Errorf("description = %q", *opt.OptimizedDescription)
	}
}

func TestSynthesize_SEOTitleDropsVendorOverLimit(t *testing.T) {
	s := NewSynthesizer(nil, Options{MaxSEOTitleLength: 60})
	p := &models.Product{ID: "p", Title: "Organic Face Cream Deluxe Edition", Vendor: "LuxeBeauty"}

	opt := s.Synthesize(context.Background(), p, issuesOf(models.IssueSEOTitle))
	if got := *opt.OptimizedSEOTitle; got != "Organic Face Cream Deluxe Edition | Nourishing & Anti-Aging" {
		t.Errorf("seo title = %q", got)
	}
}

func TestSynthesize_SEODescriptionTruncated(t *testing.T) {
	s := NewSynthesizer(nil, Options{})
	p := &models.Product{ID: "p", Title: "Hand Crafted Botanical Linen Room Spray With Lavender And Cedar"}

	full := buildSEODescription(p.Title, KindGeneral)
	if utf8.RuneCountInString(full) <= 160 {
		t.Fatalf("test title too short, template is %d chars", utf8.RuneCountInString(full))
	}

	opt := s.Synthesize(context.Background(), p, issuesOf(models.IssueSEODescriptionMissing))
	got := *opt.OptimizedSEODescription
	if utf8.RuneCountInString(got) != 160 {
		t.Errorf("length = %d, want 160", utf8.RuneCountInString(got))
	}
	if got != string([]rune(full)[:157])+"..." {
		t.Errorf("seo description = %q", got)
	}
}

func TestSynthesize_OnlyTriggeredFields(t *testing.T) {
	s := NewSynthesizer(nil, Options{})

	tests := []struct {
		name      string
		issues    []models.Issue
		wantDesc  bool
		wantTitle bool
		wantSEO   bool
		wantNotes []string
	}{
		{"benefits only", issuesOf(models.IssueMissingBenefits), true, false, false, []string{NoteDescription}},
		{"title only", issuesOf(models.IssueSEOTitle), false, true, false, []string{NoteSEOTitle}},
		{"seo long only", issuesOf(models.IssueSEODescriptionLong), false, false, true, []string{NoteSEODescription}},
		{"title and seo", issuesOf(models.IssueSEODescriptionShort, models.IssueSEOTitle), false, true, true, []string{NoteSEOTitle, NoteSEODescription}},
		{"no issues", nil, false, false, false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := s.Synthesize(context.Background(), faceCream, tt.issues)
			if (opt.OptimizedDescription != nil) != tt.wantDesc {
				t.Errorf("description set = %v, want %v", opt.OptimizedDescription != nil, tt.wantDesc)
			}
			if (opt.OptimizedSEOTitle != nil) != tt.wantTitle {
				t.Errorf("seo title set = %v, want %v", opt.OptimizedSEOTitle != nil, tt.wantTitle)
			}
			if (opt.OptimizedSEODescription != nil) != tt.wantSEO {
				t.Errorf("seo description set = %v, want %v", opt.OptimizedSEODescription != nil, tt.wantSEO)
			}
			if !reflect.DeepEqual(opt.ImprovementsMade, tt.wantNotes) {
				t.Errorf("ImprovementsMade = %v, want %v", opt.ImprovementsMade, tt.wantNotes)
			}
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	s := NewSynthesizer(nil, Options{})
	issues := issuesOf(models.IssueVagueLanguage, models.IssueSEOTitle, models.IssueSEODescriptionShort)

	first := s.Synthesize(context.Background(), serum, issues)
	second := s.Synthesize(context.Background(), serum, issues)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("synthesize is not deterministic")
	}
}

type fakeProvider struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return f.CompleteWithSystem(ctx, "", prompt)
}

func (f *fakeProvider) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeProvider) Close() error { return nil }

func TestSynthesize_LLMWriter(t *testing.T) {
	provider := &fakeProvider{reply: "  \"Radiant skin starts here.\"\n"}
	s := NewSynthesizer(NewLLMWriter(provider), Options{})

	opt := s.Synthesize(context.Background(), faceCream, issuesOf(models.IssueMissingCTA, models.IssueSEOTitle))

	if got := *opt.OptimizedDescription; got != "Radiant skin starts here." {
		t.Errorf("description = %q", got)
	}
	if len(provider.prompts) != 2 {
		t.Fatalf("provider called %d times, want 2", len(provider.prompts))
	}
	if !strings.Contains(provider.prompts[0], "Product: Organic Face Cream") || !strings.Contains(provider.prompts[0], "150-250 words") {
		t.Errorf("description prompt = %q", provider.prompts[0])
	}
	if !strings.Contains(provider.prompts[1], "SEO-optimized title (50-60 chars)") {
		t.Errorf("seo title prompt = %q", provider.prompts[1])
	}
}

func TestSynthesize_LLMWriterFallsBack(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	s := NewSynthesizer(NewLLMWriter(provider), Options{})
	templ := NewSynthesizer(nil, Options{})

	issues := issuesOf(models.IssueMissingCTA, models.IssueSEOTitle, models.IssueSEODescriptionMissing)
	got := s.Synthesize(context.Background(), faceCream, issues)
	want := templ.Synthesize(context.Background(), faceCream, issues)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("failed provider should produce template output")
	}
}

func TestSynthesize_LLMSEODescriptionTruncated(t *testing.T) {
	provider := &fakeProvider{reply: strings.Repeat("a", 200)}
	s := NewSynthesizer(NewLLMWriter(provider), Options{})

	opt := s.Synthesize(context.Background(), faceCream, issuesOf(models.IssueSEODescriptionMissing))
	if got := *opt.OptimizedSEODescription; got != strings.Repeat("a", 157)+"..." {
		t.Errorf("seo description length = %d", len(got))
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		input  string
		max    int
		expect string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"ééééééééééé", 10, "ééééééé..."},
	}

	for _, tt := range tests {
		if got := truncateRunes(tt.input, tt.max); got != tt.expect {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expect)
		}
	}
}
