package cli

import (
	"fmt"
	"strings"

	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfgPath := config.FindConfigPath(cfgFile)
			if cfgPath == "" {
				return fmt.Errorf("config file not found")
			}

			fmt.Fprintf(out, "Validating config: %s\n", cfgPath)

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			errs := config.Validate(cfg)
			if len(errs) > 0 {
				fmt.Fprintln(out, "\nValidation errors:")
				for _, e := range errs {
					fmt.Fprintf(out, "  - %v\n", e)
				}
				return fmt.Errorf("configuration is invalid")
			}

			fmt.Fprintln(out, "\nConfiguration is valid!")
			fmt.Fprintf(out, "  - Store: %s\n", cfg.Store)
			fmt.Fprintf(out, "  - Catalog: %s\n", cfg.Catalog.Source)
			fmt.Fprintf(out, "  - Writer: %s\n", cfg.Content.Writer)
			if len(cfg.Pipeline.Steps) > 0 {
				fmt.Fprintf(out, "  - Steps: %s\n", strings.Join(cfg.Pipeline.Steps, ", "))
			}
			if cfg.Duplicates.Enabled {
				fmt.Fprintf(out, "  - Qdrant URL: %s (collection %s)\n", cfg.Qdrant.URL, cfg.CollectionName())
				fmt.Fprintf(out, "  - Primary embedding: %s (%s)\n", cfg.Embedding.Primary.Provider, cfg.Embedding.Primary.Model)
			}

			total := 0
			for _, words := range cfg.Audit.Keywords {
				total += len(words)
			}
			fmt.Fprintf(out, "  - Keywords: %d across %d lists\n", total, len(cfg.Audit.Keywords))

			return nil
		},
	}
}
