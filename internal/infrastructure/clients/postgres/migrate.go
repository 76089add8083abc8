package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies all pending schema migrations
func (c *Client) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, c.db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, c.db)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}

	log.Info().Int64("version", version).Msg("Database migrations applied")
	return nil
}
