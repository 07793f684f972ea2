package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Kavirubc/shopcopy/internal/catalog"
	"github.com/Kavirubc/shopcopy/internal/pipeline"
	"github.com/Kavirubc/shopcopy/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the process and export endpoints over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.OutOrStdout(), false)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			source, err := catalog.NewSource(&cfg.Catalog)
			if err != nil {
				return err
			}

			coord, err := pipeline.New(cfg, dryRun)
			if err != nil {
				return fmt.Errorf("failed to create pipeline: %w", err)
			}
			defer coord.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(coord, source, version).ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
