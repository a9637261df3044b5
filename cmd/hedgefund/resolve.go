package main

import (
	"fmt"

	"github.com/ZacBi/ai-hedge-fund/langfuse"
	"github.com/ZacBi/ai-hedge-fund/prompts"
	"github.com/ZacBi/ai-hedge-fund/prompts/registry"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var label string
	var strict bool
	cmd := &cobra.Command{
		Use:   "resolve <prompt-name>",
		Short: "Resolve a prompt: remote override when configured, compiled-in default otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
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
			opts := []prompts.ResolverOption{
				prompts.WithLabel(label),
				prompts.WithStrict(strict),
			}
			if cfg.LangfuseConfigured() {
				client, err := langfuse.New(cfg.Langfuse.Host, cfg.Langfuse.PublicKey, cfg.Langfuse.SecretKey)
				if err != nil {
					return err
				}
				opts = append(opts, prompts.WithOverrides(client))
			}
			resolver := prompts.NewResolver(reg, opts...)
			tpl, err := resolver.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range tpl.Messages {
				fmt.Fprintf(out, "[%s]\n%s\n", m.Role, m.Content)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "remote label selecting the active version (default from config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on remote errors instead of falling back to the default")
	return cmd
}
