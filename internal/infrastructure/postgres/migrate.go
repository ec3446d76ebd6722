package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// versionTable tabla donde tern guarda la versión aplicada del esquema.
const versionTable = "schema_version"

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrationsFS raíz con los archivos NNN_nombre.sql que espera tern.
func migrationsFS() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic("postgres: migrations embebidas: " + err.Error())
	}
	return sub
}

// Migrate lleva el esquema a la última versión embebida. tern corre cada
// migración pendiente en su propia transacción.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("migraciones: adquirir conexión: %w", err)
	}
	defer conn.Release()

	m, err := migrate.NewMigrator(ctx, conn.Conn(), versionTable)
	if err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	if err := m.LoadMigrations(migrationsFS()); err != nil {
		return fmt.Errorf("migraciones: cargar: %w", err)
	}
	m.OnStart = func(sequence int32, name, direction, _ string) {
		log.Info().Int32("version", sequence).Str("name", name).Str("direction", direction).Msg("aplicando migración")
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	version, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("migraciones: versión actual: %w", err)
	}
	log.Info().Int32("version", version).Msg("esquema actualizado")
	return nil
}
