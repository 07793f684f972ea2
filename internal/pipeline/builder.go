package pipeline

import (
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/pipeline/core"
	"github.com/Kavirubc/shopcopy/internal/pipeline/steps"
)

// Builder constructs a pipeline of steps
type Builder struct {
	auditor     steps.Auditor
	synthesizer steps.Synthesizer
	similarity  steps.SimilarityFinder
	indexer     steps.ProductIndexer
	dryRun      bool
}

// NewBuilder creates a pipeline builder. similarity and indexer may be nil
// when duplicate detection is disabled.
func NewBuilder(auditor steps.Auditor, synthesizer steps.Synthesizer, similarity steps.SimilarityFinder, indexer steps.ProductIndexer, dryRun bool) *Builder {
	return &Builder{
		auditor:     auditor,
		synthesizer: synthesizer,
		similarity:  similarity,
		indexer:     indexer,
		dryRun:      dryRun,
	}
}

// BuildDefault creates the standard pipeline, adding the duplicate
// detection steps only when their collaborators exist
func (b *Builder) BuildDefault() []core.Step {
	pipe := []core.Step{
		steps.NewValidate(),
		steps.NewAudit(b.auditor),
	}
	if b.similarity != nil {
		pipe = append(pipe, steps.NewSimilaritySearch(b.similarity))
	}
	pipe = append(pipe, steps.NewOptimize(b.synthesizer))
	if b.indexer != nil {
		pipe = append(pipe, steps.NewIndexer(b.indexer, b.dryRun))
	}
	return pipe
}

// Build creates a pipeline in the given step order. An empty list yields the default.
func (b *Builder) Build(names []string) ([]core.Step, error) {
	if len(names) == 0 {
		return b.BuildDefault(), nil
	}

	var pipe []core.Step
	position := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := position[name]; ok {
			return nil, fmt.Errorf("step %s listed twice", name)
		}
		position[name] = i

		step, err := b.createStep(name)
		if err != nil {
			return nil, err
		}
		pipe = append(pipe, step)
	}

	// Priority and optimization are derived from the audit, and every
	// product with issues must be optimized
	auditAt, ok := position["audit"]
	if !ok {
		return nil, fmt.Errorf("pipeline must include the audit step")
	}
	if _, ok := position["optimize"]; !ok {
		return nil, fmt.Errorf("pipeline must include the optimize step")
	}
	for _, name := range auditDependents {
		if at, ok := position[name]; ok && at < auditAt {
			return nil, fmt.Errorf("step %s must run after audit", name)
		}
	}
	return pipe, nil
}

// auditDependents read the audit result and must follow the audit step
var auditDependents = []string{"similarity_search", "optimize", "indexer"}

func (b *Builder) createStep(name string) (core.Step, error) {
	switch name {
	case "validate":
		return steps.NewValidate(), nil
	case "audit":
		return steps.NewAudit(b.auditor), nil
	case "similarity_search":
		if b.similarity == nil {
			return nil, fmt.Errorf("step similarity_search requires duplicates.enabled")
		}
		return steps.NewSimilaritySearch(b.similarity), nil
	case "optimize":
		return steps.NewOptimize(b.synthesizer), nil
	case "indexer":
		if b.indexer == nil {
			return nil, fmt.Errorf("step indexer requires duplicates.enabled")
		}
		return steps.NewIndexer(b.indexer, b.dryRun), nil
	default:
		return nil, fmt.Errorf("unknown step: %s", name)
	}
}
