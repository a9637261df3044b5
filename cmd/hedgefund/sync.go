package main

import (
	"fmt"

	"github.com/ZacBi/ai-hedge-fund/langfuse"
	"github.com/ZacBi/ai-hedge-fund/prompts/registry"
	"github.com/ZacBi/ai-hedge-fund/promptsync"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push the compiled-in default prompts to the remote prompt store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.LangfuseConfigured() {
				fmt.Fprintln(cmd.OutOrStdout(), "LANGFUSE_PUBLIC_KEY and LANGFUSE_SECRET_KEY must be set. Skipping sync.")
				return nil
			}
			client, err := langfuse.New(cfg.Langfuse.Host, cfg.Langfuse.PublicKey, cfg.Langfuse.SecretKey)
			if err != nil {
				return err
			}
			reg, err := registry.New()
			if err != nil {
				return err
			}
			if label == "" {
				label = cfg.Label
			}
			syncer := promptsync.New(client, reg, promptsync.WithLabel(label))
			sum, err := syncer.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done. Updated %d, skipped %d unchanged.\n", sum.Created, sum.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "label attached to created prompt versions (default from config)")
	return cmd
}
