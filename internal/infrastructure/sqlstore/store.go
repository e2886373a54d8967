package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Precios-api/migrations"
	"github.com/jhoicas/Precios-api/pkg/config"
)

// Open abre la conexión al store configurado: PostgreSQL (driver pgx vía
// database/sql) si hay DATABASE_URL, o SQLite embebido en archivo si no.
// Ambos backends se sirven con los mismos repositorios.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	var driver, dsn string
	if cfg.UsesPostgres() {
		driver = "pgx"
		dsn = cfg.ConnectionString()
	} else {
		driver = "sqlite3"
		// foreign_keys no viene activo por defecto en SQLite
		dsn = cfg.SQLitePath + "?_foreign_keys=on"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", driver, err)
	}

	if cfg.UsesPostgres() {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite serializa escrituras; una sola conexión evita SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}

// Migrate aplica las migraciones goose embebidas según el dialecto del store.
func Migrate(db *sql.DB, usesPostgres bool) error {
	goose.SetBaseFS(migrations.FS)
	dialect := "sqlite3"
	if usesPostgres {
		dialect = "postgres"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("dialecto goose: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
