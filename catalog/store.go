package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:embed models.json
var seedModels []byte

// Model is a row in the llm_models table.
type Model struct {
	ID          string    `db:"id"`
	DisplayName string    `db:"display_name"`
	ModelName   string    `db:"model_name"`
	Provider    string    `db:"provider"`
	SortOrder   int       `db:"sort_order"`
	IsEnabled   bool      `db:"is_enabled"`
	Source      string    `db:"source"`
	CreatedAt   time.Time `db:"created_at"`
}

// ModelRef is the panel-facing shape of one model.
type ModelRef struct {
	DisplayName string `json:"display_name"`
	ModelName   string `json:"model_name"`
}

// Provider groups the models of one provider.
type Provider struct {
	Name   string     `json:"name"`
	Models []ModelRef `json:"models"`
}

// seedEntry is one record in the embedded models.json.
type seedEntry struct {
	DisplayName string `json:"display_name"`
	ModelName   string `json:"model_name"`
	Provider    string `json:"provider"`
}

// Store is the sqlx-backed store for the model catalog.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// List returns all enabled models ordered by sort order.
func (s *Store) List(ctx context.Context) ([]*Model, error) {
	var models []*Model
	err := s.db.SelectContext(ctx, &models,
		`SELECT * FROM llm_models WHERE is_enabled = TRUE ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	return models, nil
}

// SeedIfEmpty inserts the embedded static defaults when the table is empty.
// Returns the number of rows inserted (0 when the table already has rows).
func (s *Store) SeedIfEmpty(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM llm_models`); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	var entries []seedEntry
	if err := json.Unmarshal(seedModels, &entries); err != nil {
		return 0, fmt.Errorf("catalog: parse seed models: %w", err)
	}
	now := time.Now().UTC()
	inserted := 0
	for i, e := range entries {
		if e.DisplayName == "" || e.ModelName == "" {
			continue
		}
		provider := e.Provider
		if provider == "" {
			provider = ProviderOpenRouter
		}
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO llm_models (id, display_name, model_name, provider, sort_order, is_enabled, source, created_at)
			VALUES (?, ?, ?, ?, ?, TRUE, 'static', ?)
		`, uuid.New().String(), e.DisplayName, e.ModelName, provider, i, now)
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// ReplaceProvider replaces every row of one provider with the given models,
// in one transaction. Returns (deleted, inserted).
func (s *Store) ReplaceProvider(ctx context.Context, provider, source string, models []ModelRef) (int, int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM llm_models WHERE provider = ?`, provider)
	if err != nil {
		return 0, 0, err
	}
	deleted64, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}

	now := time.Now().UTC()
	for i, m := range models {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO llm_models (id, display_name, model_name, provider, sort_order, is_enabled, source, created_at)
			VALUES (?, ?, ?, ?, ?, TRUE, ?, ?)
		`, uuid.New().String(), m.DisplayName, m.ModelName, provider, i, source, now)
		if err != nil {
			return 0, 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return int(deleted64), len(models), nil
}

// Providers returns enabled models grouped by provider, providers sorted by
// name; models keep their sort order within each provider.
func (s *Store) Providers(ctx context.Context) ([]Provider, error) {
	models, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]ModelRef)
	for _, m := range models {
		grouped[m.Provider] = append(grouped[m.Provider], ModelRef{
			DisplayName: m.DisplayName,
			ModelName:   m.ModelName,
		})
	}
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Provider, 0, len(names))
	for _, name := range names {
		out = append(out, Provider{Name: name, Models: grouped[name]})
	}
	return out, nil
}
