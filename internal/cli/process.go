package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Kavirubc/shopcopy/internal/pipeline"
	"github.com/spf13/cobra"
)

func newProcessCmd() *cobra.Command {
	var (
		minPriority string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "process [product-id...]",
		Short: "Audit and optimize catalog products",
		Long: `Run every product (or the given product IDs) through the audit and
optimization pipeline and print a report with before/after copy, batch
statistics and the storefront update payloads.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(out, false)
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

			writer := "template"
			if capability := coord.Capability(); capability.Enabled {
				writer = capability.Provider
			}
			pipeline.SectionHeader(out, "PROCESSING PRODUCTS")
			fmt.Fprintf(out, "Loaded %d products (writer: %s, steps: %s)\n\n",
				len(products), writer, strings.Join(coord.Steps(), " → "))

			results, err := coord.ProcessBatch(ctx, products)
			if err != nil {
				return fmt.Errorf("processing failed: %w", err)
			}

			for i := range results {
				pipeline.Separator(out, "=")
				fmt.Fprintf(out, "PRODUCT %d of %d\n", i+1, len(results))
				pipeline.Separator(out, "=")
				fmt.Fprintln(out)
				pipeline.WriteResult(out, &results[i])
			}
			for i := range results {
				pipeline.WriteFullContent(out, &results[i])
			}

			pipeline.WriteStatistics(out, pipeline.Statistics(results))

			if output != "" {
				pipeline.SectionHeader(out, "EXPORT")
				if err := writeJSONFile(output, pipeline.NewExportDocument(results)); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Results exported to %s\n\n", output)
			}

			pipeline.SectionHeader(out, "STOREFRONT UPDATE PAYLOADS")
			pipeline.WriteUpdatePayloads(out, pipeline.ExportAll(results))

			if minPriority != "" {
				filtered, err := coord.ProcessBatchWithFilter(ctx, products, minPriority)
				if err != nil {
					return err
				}
				pipeline.SectionHeader(out, "FILTERED PROCESSING")
				fmt.Fprintf(out, "Found %d products at %s priority or above\n",
					len(filtered), minPriority)
				for _, r := range filtered {
					fmt.Fprintf(out, "  - %s (%s priority)\n", r.ProductTitle, r.Priority)
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&minPriority, "min-priority", "", "also list products at or above this priority (none, low, medium, high, critical)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results as JSON to this file")

	return cmd
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
