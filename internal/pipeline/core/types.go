package core

import (
	"context"
	"errors"

	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/Kavirubc/shopcopy/pkg/models"
)

// ErrSkipPipeline stops the remaining steps for a product without failing it
// (e.g. the audit found nothing to fix).
var ErrSkipPipeline = errors.New("skip pipeline")

// Context carries one product's state through the pipeline steps
type Context struct {
	Ctx     context.Context
	Product *models.Product
	// Index is the product's position in its batch, used in error messages
	Index  int
	Config *config.Config

	// Result accumulates the output for this product
	Result *models.ProcessingResult

	// SkipReason is set when a step returns ErrSkipPipeline
	SkipReason string
}

// Step is a single unit of work in the pipeline
type Step interface {
	// Name identifies the step in config and logs
	Name() string
	// Run executes the step. ErrSkipPipeline ends the pipeline early;
	// any other error fails the product.
	Run(ctx *Context) error
}
