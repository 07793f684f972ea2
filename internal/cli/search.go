package cli

import (
	"fmt"

	"github.com/Kavirubc/shopcopy/internal/processor"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		limit     int
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search indexed product copy",
		Long:  `Search the duplicate-detection index with free text. Useful for checking what the index holds.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(out, true)
			if err != nil {
				return err
			}

			searcher, err := processor.NewSearcher(cfg)
			if err != nil {
				return fmt.Errorf("failed to create searcher: %w", err)
			}
			defer searcher.Close()

			results, err := searcher.Search(cmd.Context(), args[0], limit, threshold)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if len(results) == 0 {
				fmt.Fprintln(out, "No matching products found")
				return nil
			}

			fmt.Fprintf(out, "Found %d products:\n\n", len(results))
			for i, r := range results {
				fmt.Fprintf(out, "%d. %s (ID: %s)\n", i+1, r.Product.Title, r.Product.ID)
				fmt.Fprintf(out, "   Vendor: %s | Type: %s | Similarity: %.1f%%\n\n",
					r.Product.Vendor, r.Product.ProductType, r.Score*100)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum results to return")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "minimum similarity score")
	return cmd
}
