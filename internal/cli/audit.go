package cli

import (
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/audit"
	"github.com/Kavirubc/shopcopy/internal/pipeline"
	"github.com/Kavirubc/shopcopy/pkg/models"
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit [product-id...]",
		Short: "Audit product copy without generating replacements",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(out, false)
			if err != nil {
				return err
			}

			products, err := loadProducts(cmd, cfg, args)
			if err != nil {
				return err
			}

			auditor := audit.NewAuditor(audit.RulesFromConfig(&cfg.Audit))
			for i := range products {
				if err := products[i].Validate(); err != nil {
					return fmt.Errorf("product %d: %w", i, err)
				}
				result := auditor.Audit(&products[i])
				pipeline.WriteAudit(out, &models.ProcessingResult{
					ProductID:    result.ProductID,
					ProductTitle: result.ProductTitle,
					Audit:        result,
					Priority:     pipeline.DerivePriority(result),
				})
			}
			return nil
		},
	}
}
