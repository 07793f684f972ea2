package cli

import (
	"fmt"
	"os"

	"github.com/Kavirubc/shopcopy/internal/config"
	"github.com/Kavirubc/shopcopy/internal/github"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Keyword rules management commands",
	}
	cmd.AddCommand(newRulesSyncCmd())
	return cmd
}

func newRulesSyncCmd() *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download the shared keyword rules file from GitHub",
		Long: `Fetch rules_center.path from the rules_center.repo GitHub repository,
check that it parses and write it locally (to audit.rules_file by default).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(out, true)
			if err != nil {
				return err
			}

			if dest == "" {
				dest = cfg.Audit.RulesFile
			}
			if dest == "" {
				return fmt.Errorf("no destination: pass --dest or set audit.rules_file")
			}

			// An unset token falls back to the gh CLI's stored credentials
			client, err := github.NewClientWithToken(os.Getenv(cfg.RulesCenter.TokenEnv))
			if err != nil {
				return err
			}
			defer client.Close()

			if dryRun {
				dest = os.DevNull
			}

			rules, err := config.SyncRulesFromCenter(cmd.Context(), client, cfg, dest)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Synced rules v%d from %s/%s", rules.Version, cfg.RulesCenter.Repo, cfg.RulesCenter.Path)
			if dryRun {
				fmt.Fprintln(out, " (dry run, not written)")
			} else {
				fmt.Fprintf(out, " to %s\n", dest)
			}
			for name, words := range rules.Keywords {
				fmt.Fprintf(out, "  - %s: %d keywords\n", name, len(words))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "where to write the rules file (defaults to audit.rules_file)")
	return cmd
}
