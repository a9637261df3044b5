package main

import (
	"context"
	"fmt"

	"github.com/ZacBi/ai-hedge-fund/catalog"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage the LLM model catalog",
	}
	cmd.AddCommand(newModelsListCmd())
	cmd.AddCommand(newModelsRefreshCmd())
	return cmd
}

// openCatalog opens the catalog database, runs migrations, and seeds the
// static defaults when the table is empty.
func openCatalog(ctx context.Context) (*sqlx.DB, *catalog.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := catalog.Open(cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := catalog.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	store := catalog.NewStore(db)
	if _, err := store.SeedIfEmpty(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, store, nil
}

func newModelsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog models grouped by provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, store, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			providers, err := store.Providers(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range providers {
				fmt.Fprintf(out, "%s\n", p.Name)
				for _, m := range p.Models {
					fmt.Fprintf(out, "  %s\t%s\n", m.DisplayName, m.ModelName)
				}
			}
			return nil
		},
	}
}

func newModelsRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh OpenRouter models from the upstream catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, store, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			deleted, inserted, err := catalog.Refresh(cmd.Context(), catalog.NewOpenRouterClient(), store)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OpenRouter models refreshed: deleted=%d, inserted=%d\n", deleted, inserted)
			return nil
		},
	}
}
