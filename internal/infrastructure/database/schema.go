package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// Execer là phần của *pgxpool.Pool / pgx.Tx dùng để chạy DDL
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Schema trả về DDL bootstrap
func Schema() string {
	return schemaSQL
}

// EnsureSchema creates missing tables and indexes. It never alters or drops
// existing objects.
func EnsureSchema(ctx context.Context, db Execer) error {
	log.Info().Msg("[DATABASE] Ensuring schema...")

	// Không có args nên pgx dùng simple protocol, chạy được nhiều statements
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("[DATABASE] Schema ready")
	return nil
}
