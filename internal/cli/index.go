package cli

import (
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/processor"
	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "index [product-id...]",
		Short: "Index catalog copy for duplicate detection",
		Long:  `Embed product copy and store it in the vector database. Products whose copy is unchanged since the last run are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(out, true)
			if err != nil {
				return err
			}

			products, err := loadProducts(cmd, cfg, args)
			if err != nil {
				return err
			}

			backend, err := processor.NewBackend(cfg)
			if err != nil {
				return fmt.Errorf("failed to create index backend: %w", err)
			}
			defer backend.Close()

			stats, err := processor.NewIndexer(backend, dryRun).IndexProducts(cmd.Context(), products, batchSize)
			if err != nil {
				return fmt.Errorf("indexing failed: %w", err)
			}

			fmt.Fprintf(out, "Indexed %d/%d products (%d skipped, %d errors) in %dms\n",
				stats.Indexed, stats.TotalProducts, stats.Skipped, stats.Errors, stats.DurationMs)
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 50, "number of products to embed per request")
	return cmd
}
