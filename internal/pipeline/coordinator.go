package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Kavirubc/shopcopy/internal/audit"
	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/Kavirubc/shopcopy/internal/content"
	"github.com/Kavirubc/shopcopy/internal/llm"
	"github.com/Kavirubc/shopcopy/internal/pipeline/core"
	"github.com/Kavirubc/shopcopy/internal/processor"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Coordinator runs products through the audit and optimization pipeline
type Coordinator struct {
	cfg         *config.Config
	pipeline    []core.Step
	concurrency int
	capability  llm.Capability
	closers     []func() error
}

// NewCoordinator creates a coordinator around an already built pipeline
func NewCoordinator(cfg *config.Config, pipeline []core.Step) *Coordinator {
	return &Coordinator{
		cfg:         cfg,
		pipeline:    pipeline,
		concurrency: max(cfg.Pipeline.Concurrency, 1),
		capability:  llm.Describe(llm.Disabled{}),
	}
}

// New wires the auditor, synthesizer and optional duplicate detection from
// configuration. In dry-run mode nothing is written to the vector index.
func New(cfg *config.Config, dryRun bool) (*Coordinator, error) {
	auditor := audit.NewAuditor(audit.RulesFromConfig(&cfg.Audit))

	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	capability := llm.Describe(llm.Disabled{})
	var writer content.Writer
	if cfg.Content.Writer == "llm" {
		provider, err := llm.NewProvider(&cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM provider: %w", err)
		}
		closers = append(closers, provider.Close)
		capability = llm.Describe(provider)
		writer = content.NewLLMWriter(llm.NewRateLimited(provider, cfg.RateLimits.LLMRPS))
	}

	synth := content.NewSynthesizer(writer, content.Options{
		MaxSEOTitleLength:       cfg.Content.MaxSEOTitleLength,
		MaxSEODescriptionLength: cfg.Content.MaxSEODescriptionLen,
	})

	builder := NewBuilder(auditor, synth, nil, nil, dryRun)
	if cfg.Duplicates.Enabled {
		backend, err := processor.NewBackend(cfg)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to create duplicate detection backend: %w", err)
		}
		closers = append(closers, backend.Close)
		builder = NewBuilder(auditor, synth,
			processor.NewSimilarityFinder(backend, cfg.Duplicates.Threshold, cfg.Duplicates.MaxShown),
			processor.NewIndexer(backend, dryRun),
			dryRun)
	}

	pipe, err := builder.Build(cfg.Pipeline.Steps)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("invalid pipeline configuration: %w", err)
	}

	c := NewCoordinator(cfg, pipe)
	c.capability = capability
	c.closers = closers
	return c, nil
}

// Capability describes the text generator behind the synthesizer
func (c *Coordinator) Capability() llm.Capability {
	return c.capability
}

// Steps returns the names of the configured steps in run order
func (c *Coordinator) Steps() []string {
	names := make([]string, len(c.pipeline))
	for i, s := range c.pipeline {
		names[i] = s.Name()
	}
	return names
}

// Close releases the LLM and vector index connections
func (c *Coordinator) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ProcessProduct runs one product through the pipeline
func (c *Coordinator) ProcessProduct(ctx context.Context, p models.Product) (models.ProcessingResult, error) {
	return c.process(ctx, &p, 0)
}

// ProcessBatch processes products independently and returns results in input
// order. Any product that breaks the input contract fails the whole batch
// before any work is done.
func (c *Coordinator) ProcessBatch(ctx context.Context, products []models.Product) ([]models.ProcessingResult, error) {
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
	}

	results := make([]models.ProcessingResult, len(products))
	if c.concurrency == 1 || len(products) < 2 {
		for i := range products {
			r, err := c.process(ctx, &products[i], i)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	if err := c.processConcurrently(ctx, products, results); err != nil {
		return nil, err
	}
	return results, nil
}

// processConcurrently fans products out to a fixed worker pool. Each worker
// writes only its own result slots. The first failure by batch position wins.
func (c *Coordinator) processConcurrently(parent context.Context, products []models.Product, results []models.ProcessingResult) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan int)
	errs := make([]error, len(products))
	var wg sync.WaitGroup

	for w := 0; w < min(c.concurrency, len(products)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, err := c.process(ctx, &products[i], i)
				if err != nil {
					errs[i] = err
					cancel()
					continue
				}
				results[i] = r
			}
		}()
	}

feed:
	for i := range products {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		// Skip products that only saw the cancellation caused by another failure
		if err == nil || (errors.Is(err, context.Canceled) && parent.Err() == nil) {
			continue
		}
		return err
	}
	return parent.Err()
}

// ProcessBatchWithFilter processes the batch and keeps results whose priority
// is at or above minPriority. An unknown level fails before any processing.
func (c *Coordinator) ProcessBatchWithFilter(ctx context.Context, products []models.Product, minPriority string) ([]models.ProcessingResult, error) {
	threshold, err := models.ParsePriority(minPriority)
	if err != nil {
		return nil, err
	}

	results, err := c.ProcessBatch(ctx, products)
	if err != nil {
		return nil, err
	}
	return FilterByPriority(results, threshold), nil
}

func (c *Coordinator) process(ctx context.Context, p *models.Product, index int) (models.ProcessingResult, error) {
	if err := ctx.Err(); err != nil {
		return models.ProcessingResult{}, err
	}

	result := &models.ProcessingResult{
		ProductID:    p.ID,
		ProductTitle: p.Title,
		Priority:     models.PriorityNone,
	}
	pctx := &core.Context{
		Ctx:     ctx,
		Product: p,
		Index:   index,
		Config:  c.cfg,
		Result:  result,
	}

	for _, step := range c.pipeline {
		if err := step.Run(pctx); err != nil {
			if errors.Is(err, core.ErrSkipPipeline) {
				slog.DebugContext(ctx, "pipeline stopped", "product_id", p.ID, "step", step.Name(), "reason", pctx.SkipReason)
				break
			}
			return models.ProcessingResult{}, fmt.Errorf("step %s failed: %w", step.Name(), err)
		}
	}

	result.ActionRequired = result.Audit.IssuesFound > 0
	result.Priority = DerivePriority(result.Audit)

	slog.DebugContext(ctx, "processed product",
		"product_id", p.ID,
		"priority", result.Priority,
		"issues", result.Audit.IssuesFound)
	return *result, nil
}
