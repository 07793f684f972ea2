package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/pipeline"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [product-id...]",
		Short: "Print storefront update payloads as JSON",
		Long:  `Process the catalog and emit one update payload per product whose copy was regenerated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}

			products, err := loadProducts(cmd, cfg, args)
			if err != nil {
				return err
			}

			coord, err := pipeline.New(cfg, dryRun)
			if err != nil {
				return fmt.Errorf("failed to create pipeline: %w", err)
			}
			defer coord.Close()

			results, err := coord.ProcessBatch(cmd.Context(), products)
			if err != nil {
				return fmt.Errorf("processing failed: %w", err)
			}
			payloads := pipeline.ExportAll(results)

			if output != "" {
				return writeJSONFile(output, payloads)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(payloads)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write payloads to this file instead of stdout")
	return cmd
}
