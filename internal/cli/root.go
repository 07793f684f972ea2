package cli

import (
	"fmt"
	"io"

	"github.com/Kavirubc/shopcopy/internal/catalog"
	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/Kavirubc/shopcopy/internal/logging"
	"github.com/Kavirubc/shopcopy/pkg/models"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	dryRun   bool
	logLevel string
	version  = "dev"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shopcopy",
		Short: "Product copy auditor and optimizer",
		Long: `shopcopy audits storefront product copy against content rules, ranks
each product by remediation priority and regenerates the descriptions and
SEO fields that fail the audit.

Optional duplicate detection embeds product copy into a Qdrant index.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "skip all writes (vector index, rules file)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(newProcessCmd())
	root.AddCommand(newAuditCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newIndexCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newRulesCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shopcopy version %s\n", version)
		},
	}
}

// loadConfig finds, loads and validates the config, then sets up logging.
// Without a config file the defaults are used unless requireFile is set.
func loadConfig(w io.Writer, requireFile bool) (*config.Config, error) {
	cfgPath := config.FindConfigPath(cfgFile)
	if cfgPath == "" && requireFile {
		return nil, fmt.Errorf("config file not found")
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(w, "config error: %v\n", e)
		}
		return nil, fmt.Errorf("invalid configuration")
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	logging.Init(cfg.Logging.Format, logging.ParseLevel(level))

	return cfg, nil
}

// loadProducts reads the configured catalog, narrowed to ids when given
func loadProducts(cmd *cobra.Command, cfg *config.Config, ids []string) ([]models.Product, error) {
	source, err := catalog.NewSource(&cfg.Catalog)
	if err != nil {
		return nil, err
	}
	return catalog.Select(cmd.Context(), source, ids)
}
