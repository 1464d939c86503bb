// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db persists editor text in named slots. It hides the underlying
// database (SQLite, PostgreSQL or MySQL) behind the Store interface and
// applies the embedded schema migrations on open.
package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DefaultSlot is the slot used when none is configured.
const DefaultSlot = "savedText"

var (
	//go:embed migrations
	embeddedMigrations embed.FS
	// sqlOpenFunc allows tests to override database opening behavior.
	sqlOpenFunc = sql.Open
)

// Store is the persistence surface used by the CLI and the TUI.
type Store interface {
	// SaveText stores text under slot, replacing any previous content.
	SaveText(ctx context.Context, slot, text string) error
	// LoadText returns the text stored under slot, or "" if there is none.
	LoadText(ctx context.Context, slot string) (string, error)
	// ClearText removes slot. Clearing a missing slot is not an error.
	ClearText(ctx context.Context, slot string) error
	// ListSlots returns every stored slot ordered by name.
	ListSlots(ctx context.Context) ([]Slot, error)
	// ExportBackup snapshots every slot.
	ExportBackup(ctx context.Context) (*BackupData, error)
	// ImportBackup restores slots from a backup. With full set, existing
	// slots are removed first; otherwise backup slots are merged in.
	ImportBackup(ctx context.Context, data *BackupData, full bool) (int, error)
	Close() error
}

// Slot is one saved text.
type Slot struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New opens the database described by dbType and dsn, runs migrations and
// returns a bun-backed Store.
func New(dbType, dsn string) (Store, error) {
	return NewStoreFromDSN(dbType, dsn)
}

// driverFor maps a configured database type to its database/sql driver.
func driverFor(dbType string) (string, error) {
	switch dbType {
	case "sqlite":
		return "sqlite", nil
	case "postgres":
		// The pgx stdlib registers driver name "pgx".
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedDB, dbType)
	}
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// NewStoreFromDSN opens a sql.DB for the given DSN, runs migrations, and
// returns a Store backed by a long-lived *bun.DB.
func NewStoreFromDSN(dbType, dsn string) (Store, error) {
	driverName, err := driverFor(dbType)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	const (
		defaultMaxOpenConns    = 4
		defaultMaxIdleConns    = 4
		defaultConnMaxLifetime = 5 * time.Minute
	)

	maxOpen := envInt("WONDERTEXT_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := envInt("WONDERTEXT_DB_MAX_IDLE_CONNS", defaultMaxIdleConns)
	// Every connection to an in-memory SQLite database sees its own empty
	// database, so pin the pool to one connection.
	if dbType == "sqlite" && isMemoryDSN(dsn) {
		maxOpen = 1
		maxIdle = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	dbLogf("db: opened %s driver in %s (max open=%d)", driverName, time.Since(start), maxOpen)

	migStart := time.Now()
	if err := RunMigrations(sqlDB, dbType); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	dbLogf("db: migrations for %s completed in %s", dbType, time.Since(migStart))

	return &BunStore{bun: createBunDB(sqlDB, dbType)}, nil
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// RunMigrations applies the embedded *.up.sql files for dbType that are not
// yet recorded in schema_migrations, each in its own transaction.
func RunMigrations(db *sql.DB, dbType string) error {
	migrationsPath := fmt.Sprintf("migrations/%s", dbType)

	entries, err := fs.ReadDir(embeddedMigrations, migrationsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: no migrations for '%s'", ErrUnsupportedDB, dbType)
		}
		return fmt.Errorf("failed to read embedded migrations (%s): %w", migrationsPath, err)
	}

	var ups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)

	if err := ensureSchemaMigrationsTable(db, dbType); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	selectQuery := "SELECT 1 FROM schema_migrations WHERE version = ?"
	insertQuery := "INSERT INTO schema_migrations(version, applied_at) VALUES(?, ?)"
	if dbType == "postgres" {
		selectQuery = "SELECT 1 FROM schema_migrations WHERE version = $1"
		insertQuery = "INSERT INTO schema_migrations(version, applied_at) VALUES($1, $2)"
	}

	for _, fname := range ups {
		version := strings.TrimSuffix(fname, ".up.sql")

		var exists int
		err := db.QueryRow(selectQuery, version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check migration version %s: %w", version, err)
		}

		p := path.Join(migrationsPath, fname)
		data, err := embeddedMigrations.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", p, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %s: %w", version, err)
		}
		if _, err := tx.Exec(string(data)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", version, err)
		}
		if _, err := tx.Exec(insertQuery, version, time.Now().UTC()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", version, err)
		}
		dbLogf("db: applied migration %s", version)
	}

	return nil
}

func ensureSchemaMigrationsTable(db *sql.DB, dbType string) error {
	// MySQL cannot index TEXT columns without a length.
	ddl := `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMP)`
	if dbType == "mysql" {
		ddl = `CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(191) PRIMARY KEY, applied_at TIMESTAMP)`
	}
	_, err := db.Exec(ddl)
	return err
}

// RunDBMaintenance performs engine-specific maintenance for the given
// database: PRAGMA optimize, VACUUM and an integrity check for SQLite,
// VACUUM ANALYZE for PostgreSQL and OPTIMIZE TABLE for MySQL.
func RunDBMaintenance(ctx context.Context, dbType, dsn string) error {
	driverName, err := driverFor(dbType)
	if err != nil {
		return err
	}
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for maintenance: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	switch dbType {
	case "sqlite":
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
			dbLogf("db: sqlite optimize failed (ignored): %v", err)
		}
		if _, err := sqlDB.ExecContext(ctx, "VACUUM;"); err != nil {
			return fmt.Errorf("sqlite vacuum failed: %w", err)
		}
		var res string
		if err := sqlDB.QueryRowContext(ctx, "PRAGMA integrity_check;").Scan(&res); err != nil {
			return fmt.Errorf("sqlite integrity_check failed: %w", err)
		}
		if res != "ok" {
			return fmt.Errorf("sqlite integrity_check failed: %s", res)
		}
	case "postgres":
		if _, err := sqlDB.ExecContext(ctx, "VACUUM ANALYZE;"); err != nil {
			return fmt.Errorf("postgres vacuum failed: %w", err)
		}
	case "mysql":
		if _, err := sqlDB.ExecContext(ctx, "OPTIMIZE TABLE text_slots"); err != nil {
			return fmt.Errorf("mysql optimize failed: %w", err)
		}
	}
	return nil
}
