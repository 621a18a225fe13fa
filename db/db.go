// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

var ErrUnknownDialect = errors.New("unknown database type")

// ParseDialect accepts "sqlite" (also "sqlite3") or "postgres" (also "postgresql")
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql":
		return Postgres, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// DriverName is the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// Rebind rewrites ? placeholders into the dialect's bind syntax.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

type Options struct {
	Dialect Dialect
	// File path (sqlite) or connection URL (postgres)
	DSN string
	// Optional external schema script; the built-in schema is used when empty or missing
	SchemaPath string
	// Optional seed script applied once, right after the schema
	SeedPath string
}

// Open connects to the database and initializes it on first run.
// An already initialized database is never re-initialized.
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.DSN == "" {
		return nil, errors.New("database location required")
	}

	if opts.Dialect == Postgres {
		return openPostgres(ctx, opts)
	}
	return openSQLite(ctx, opts)
}

func openSQLite(ctx context.Context, opts Options) (*sql.DB, error) {
	path := sqlitePath(opts.DSN)
	inMemory := path == "" || path == ":memory:" || strings.Contains(opts.DSN, "mode=memory")

	needInit := inMemory
	if !inMemory {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			needInit = true
		} else if err != nil {
			return nil, fmt.Errorf("failed to stat database file: %w", err)
		}
	}

	conn, err := sql.Open(SQLite.DriverName(), sqliteDSN(opts.DSN))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: writers serialize on the handle and in-memory
	// databases stay a single database.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if needInit {
		if err := initialize(ctx, conn, opts); err != nil {
			conn.Close()
			if !inMemory {
				os.Remove(path)
			}
			return nil, err
		}
		slog.Info("database initialized", "path", path)
	} else if info, err := os.Stat(path); err == nil {
		slog.Info("database opened", "path", path, "size", humanize.Bytes(uint64(info.Size())))
	}

	return conn, nil
}

func openPostgres(ctx context.Context, opts Options) (*sql.DB, error) {
	conn, err := sql.Open(Postgres.DriverName(), opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	var tables int
	err = conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = 'event'
	`).Scan(&tables)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to inspect schema: %w", err)
	}

	if tables == 0 {
		if err := initialize(ctx, conn, opts); err != nil {
			conn.Close()
			return nil, err
		}
		slog.Info("database initialized", "dialect", Postgres)
	}

	return conn, nil
}

// initialize applies the schema and the optional seed script
func initialize(ctx context.Context, conn *sql.DB, opts Options) error {
	schema, err := readScript(opts.SchemaPath)
	if err != nil {
		return err
	}

	if schema == "" {
		if err := CreateSchema(ctx, conn, opts.Dialect); err != nil {
			return err
		}
	} else if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema %s: %w", opts.SchemaPath, err)
	}

	seed, err := readScript(opts.SeedPath)
	if err != nil {
		return err
	}
	if seed != "" {
		if _, err := conn.ExecContext(ctx, seed); err != nil {
			return fmt.Errorf("failed to apply seed data %s: %w", opts.SeedPath, err)
		}
		slog.Info("seed data applied", "path", opts.SeedPath)
	}

	return nil
}

// readScript returns "" when no path is configured or the file is absent
func readScript(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("script not found, skipping", "path", path)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

// sqlitePath extracts the filesystem path from a plain path or a file: URI
func sqlitePath(dsn string) string {
	p := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}

func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
