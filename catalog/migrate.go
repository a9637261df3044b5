package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrations embed.FS

// Migrate runs all pending goose migrations from the embedded migration
// files. Call before using a Store.
func Migrate(db *sqlx.DB) error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("catalog: set goose dialect: %w", err)
	}
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("catalog: sub migrations fs: %w", err)
	}
	goose.SetBaseFS(sub)
	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("catalog: run migrations: %w", err)
	}
	goose.SetBaseFS(nil)
	return nil
}
