package pipeline

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

const (
	reportWidth            = 80
	originalPreviewLength  = 200
	optimizedPreviewLength = 300
)

var severityMarkers = map[models.Severity]string{
	models.SeverityCritical: "🔴",
	models.SeverityHigh:     "🟠",
	models.SeverityMedium:   "🟡",
	models.SeverityLow:      "🟢",
}

// ExportSummary counts what an export file contains
type ExportSummary struct {
	TotalProcessed int `json:"total_processed"`
	Optimized      int `json:"optimized"`
}

// ExportDocument is the JSON layout written by the process command's --output
type ExportDocument struct {
	Results []models.ProcessingResult `json:"results"`
	Summary ExportSummary             `json:"summary"`
}

// NewExportDocument wraps a batch with its summary counts
func NewExportDocument(results []models.ProcessingResult) ExportDocument {
	doc := ExportDocument{
		Results: results,
		Summary: ExportSummary{TotalProcessed: len(results)},
	}
	for _, r := range results {
		if r.Optimization != nil {
			doc.Summary.Optimized++
		}
	}
	return doc
}

// Separator writes a full-width rule
func Separator(w io.Writer, char string) {
	fmt.Fprintln(w, strings.Repeat(char, reportWidth))
}

// SectionHeader writes a ruled section title
func SectionHeader(w io.Writer, title string) {
	Separator(w, "=")
	fmt.Fprintf(w, "  %s\n", title)
	Separator(w, "=")
	fmt.Fprintln(w)
}

// WriteResult prints the audit, the optimization summary and the before/after
// comparison of one product
func WriteResult(w io.Writer, r *models.ProcessingResult) {
	WriteAudit(w, r)
	WriteOptimization(w, r)
	WriteBeforeAfter(w, r)
}

func WriteAudit(w io.Writer, r *models.ProcessingResult) {
	fmt.Fprintf(w, "Product: %s (ID: %s)\n", r.ProductTitle, r.ProductID)
	fmt.Fprintf(w, "Priority: %s\n", strings.ToUpper(string(r.Priority)))
	fmt.Fprintf(w, "Issues Found: %d (Severity: %s)\n", r.Audit.IssuesFound, r.Audit.Severity)

	if len(r.Audit.Issues) > 0 {
		fmt.Fprintln(w, "\nDetected Issues:")
		for i, issue := range r.Audit.Issues {
			marker, ok := severityMarkers[issue.Severity]
			if !ok {
				marker = "⚪"
			}
			fmt.Fprintf(w, "  %d. %s [%s] %s\n", i+1, marker, strings.ToUpper(string(issue.Severity)), issue.Type)
			fmt.Fprintf(w, "     %s\n", issue.Message)
		}
	}

	if len(r.SimilarProducts) > 0 {
		fmt.Fprintln(w, "\nSimilar Catalog Copy:")
		for _, s := range r.SimilarProducts {
			fmt.Fprintf(w, "  - %s (ID: %s, %.0f%% similar)\n", s.Title, s.ProductID, s.Score*100)
		}
	}
	fmt.Fprintln(w)
}

func WriteOptimization(w io.Writer, r *models.ProcessingResult) {
	opt := r.Optimization
	if opt == nil {
		fmt.Fprintln(w, "✓ No optimization needed - content is already high quality")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, "Optimization Applied:")
	fmt.Fprintf(w, "Improvements: %d\n", len(opt.ImprovementsMade))
	for _, improvement := range opt.ImprovementsMade {
		fmt.Fprintf(w, "  ✓ %s\n", improvement)
	}
	fmt.Fprintln(w)
}

func WriteBeforeAfter(w io.Writer, r *models.ProcessingResult) {
	opt := r.Optimization
	if opt == nil {
		return
	}

	Separator(w, "-")
	fmt.Fprintln(w, "BEFORE / AFTER COMPARISON")
	Separator(w, "-")

	if opt.OptimizedDescription != nil {
		fmt.Fprintln(w, "\n📝 DESCRIPTION:")
		fmt.Fprintln(w, "\nOriginal:")
		fmt.Fprintf(w, "  %s...\n", firstRunes(opt.OriginalDescription, originalPreviewLength))
		fmt.Fprintf(w, "\n  Length: %d characters\n", utf8.RuneCountInString(opt.OriginalDescription))

		fmt.Fprintln(w, "\nOptimized:")
		desc := *opt.OptimizedDescription
		preview := desc
		if utf8.RuneCountInString(desc) > optimizedPreviewLength {
			preview = firstRunes(desc, optimizedPreviewLength) + "..."
		}
		fmt.Fprintf(w, "  %s\n", preview)
		fmt.Fprintf(w, "\n  Length: %d characters\n", utf8.RuneCountInString(desc))
	}

	if opt.OptimizedSEOTitle != nil {
		fmt.Fprintln(w, "\n🔍 SEO TITLE:")
		fmt.Fprintf(w, "  New: %s\n", *opt.OptimizedSEOTitle)
	}

	if opt.OptimizedSEODescription != nil {
		fmt.Fprintln(w, "\n🔍 SEO META DESCRIPTION:")
		fmt.Fprintf(w, "  New: %s\n", *opt.OptimizedSEODescription)
		fmt.Fprintf(w, "  Length: %d characters\n", utf8.RuneCountInString(*opt.OptimizedSEODescription))
	}
	fmt.Fprintln(w)
}

// WriteFullContent prints the complete regenerated copy of a product
func WriteFullContent(w io.Writer, r *models.ProcessingResult) {
	opt := r.Optimization
	if opt == nil || opt.OptimizedDescription == nil {
		return
	}

	SectionHeader(w, "FULL OPTIMIZED CONTENT - "+r.ProductTitle)
	fmt.Fprintln(w, "OPTIMIZED DESCRIPTION:")
	fmt.Fprintln(w, *opt.OptimizedDescription)
	fmt.Fprintln(w)

	if opt.OptimizedSEOTitle != nil {
		fmt.Fprintf(w, "SEO TITLE: %s\n\n", *opt.OptimizedSEOTitle)
	}
	if opt.OptimizedSEODescription != nil {
		fmt.Fprintf(w, "SEO DESCRIPTION: %s\n\n", *opt.OptimizedSEODescription)
	}
}

// WriteStatistics prints batch totals. Only non-empty priority buckets are listed.
func WriteStatistics(w io.Writer, stats models.Statistics) {
	SectionHeader(w, "PROCESSING STATISTICS")

	fmt.Fprintf(w, "Total Products Processed: %d\n", stats.TotalProductsProcessed)
	fmt.Fprintf(w, "Products with Issues: %d\n", stats.ProductsWithIssues)
	fmt.Fprintf(w, "Products Optimized: %d\n", stats.ProductsOptimized)
	fmt.Fprintf(w, "Total Issues Found: %d\n", stats.TotalIssuesFound)
	fmt.Fprintf(w, "Completion Rate: %s\n", stats.CompletionRate)

	fmt.Fprintln(w, "\nPriority Breakdown:")
	for i := len(models.Priorities) - 1; i >= 0; i-- {
		p := models.Priorities[i]
		if count := stats.PriorityBreakdown[p]; count > 0 {
			fmt.Fprintf(w, "  %s: %d\n", capitalize(string(p)), count)
		}
	}
	fmt.Fprintln(w)
}

// WriteUpdatePayloads lists which fields each update would change
func WriteUpdatePayloads(w io.Writer, payloads []models.UpdatePayload) {
	for _, p := range payloads {
		fields := make([]string, 0, len(p.Updates))
		for _, name := range []string{FieldDescription, FieldSEOTitle, FieldSEODescription} {
			if _, ok := p.Updates[name]; ok {
				fields = append(fields, name)
			}
		}
		fmt.Fprintf(w, "Product ID: %s\n", p.ProductID)
		fmt.Fprintf(w, "Fields to update: %s\n\n", strings.Join(fields, ", "))
	}
}

func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
