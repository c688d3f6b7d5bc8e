package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/m3rciful/phonebot/core/logger"
)

// RunMigrations waits for the server and applies every pending up migration
// found in cfg.MigrationsDir.
func RunMigrations(cfg Config) error {
	ctx := context.Background()
	if err := waitReady(ctx, cfg.DSN(), readyTimeout); err != nil {
		migrationFailed(ctx, "db.wait", err)
		return err
	}

	dir, err := resolveMigrationsDir(cfg.MigrationsDir)
	if err != nil {
		migrationFailed(ctx, "migrate.resolve", err)
		return err
	}
	files := listMigrationFiles(dir)
	logFiles(ctx, "migrate.resolve", files, slog.String("path", dir))

	m, err := migrate.New("file://"+filepath.ToSlash(dir), cfg.URL())
	if err != nil {
		migrationFailed(ctx, "migrate.init", err)
		return fmt.Errorf("init migrations: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	from := schemaVersion(m)
	start := time.Now()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		migrationFailed(ctx, "migrate.apply", err, slog.Duration("duration", logger.RoundMS(time.Since(start))))
		return fmt.Errorf("apply migrations: %w", err)
	}
	took := time.Since(start)
	to := schemaVersion(m)

	applied := appliedBetween(files, from, to)
	if len(applied) > 0 {
		logFiles(ctx, "migrate.apply", applied)
	}
	logger.MIG.LogAttrs(ctx, slog.LevelInfo, "",
		slog.String("event", "migrate.summary"),
		slog.String("status", "ok"),
		slog.Uint64("from_ver", from),
		slog.Uint64("to_ver", to),
		slog.Int("files", len(applied)),
		slog.Duration("duration", logger.RoundMS(took)),
	)
	return nil
}

// schemaVersion reports the applied version, zero for an empty schema.
func schemaVersion(m *migrate.Migrate) uint64 {
	v, _, err := m.Version()
	if err != nil {
		return 0
	}
	return uint64(v)
}

func migrationFailed(ctx context.Context, event string, err error, extra ...slog.Attr) {
	logger.MIG.LogAttrs(ctx, slog.LevelError, "",
		append([]slog.Attr{
			slog.String("event", event),
			slog.String("status", "fail"),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		}, extra...)...,
	)
}

func logFiles(ctx context.Context, event string, files []string, extra ...slog.Attr) {
	preview, truncated := logger.SummarizeStrings(files, 6)
	attrs := append([]slog.Attr{
		slog.String("event", event),
		slog.Int("files_total", len(files)),
		slog.String("files_preview", preview),
	}, extra...)
	if truncated {
		attrs = append(attrs, slog.Bool("files_truncated", true))
	}
	logger.MIG.LogAttrs(ctx, slog.LevelDebug, "", attrs...)
}

func resolveMigrationsDir(dir string) (string, error) {
	if dir == "" {
		dir = "migrations"
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir %q: %w", dir, err)
	}
	return abs, nil
}

// listMigrationFiles returns the sorted base names of the up migrations in dir.
func listMigrationFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	return names
}

// appliedBetween returns the files whose version lies in (from, to].
func appliedBetween(files []string, from, to uint64) []string {
	var out []string
	for _, name := range files {
		prefix, _, _ := strings.Cut(name, "_")
		v, err := strconv.ParseUint(prefix, 10, 64)
		if err == nil && v > from && v <= to {
			out = append(out, name)
		}
	}
	return out
}
