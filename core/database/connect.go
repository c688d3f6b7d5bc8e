package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/m3rciful/phonebot/core/logger"
)

const (
	driverName     = "postgres"
	connectTimeout = 5 * time.Second
	readyTimeout   = 30 * time.Second
	readyInterval  = 2 * time.Second
)

// Connect opens the connection pool sized by cfg.MaxConnections and verifies
// the server answers.
func Connect(cfg Config) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	start := time.Now()
	db, err := sqlx.ConnectContext(ctx, driverName, cfg.DSN())
	attrs := cfg.logAttrs(time.Since(start))
	if err != nil {
		logger.DB.LogAttrs(ctx, slog.LevelError, "",
			append(attrs,
				slog.String("event", "db.connect"),
				slog.String("status", "fail"),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)...,
		)
		return nil, fmt.Errorf("db connect %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxConnections)
	db.SetConnMaxIdleTime(5 * time.Minute)

	logger.DB.LogAttrs(ctx, slog.LevelInfo, "",
		append(attrs,
			slog.String("event", "db.connect"),
			slog.String("status", "ok"),
			slog.Int("pool_open", cfg.MaxConnections),
		)...,
	)
	return db, nil
}

func (c Config) logAttrs(took time.Duration) []slog.Attr {
	return []slog.Attr{
		slog.String("driver", driverName),
		slog.String("host", c.Host),
		slog.String("port", c.Port),
		slog.String("db", c.Name),
		slog.Duration("duration", logger.RoundMS(took)),
	}
}

// waitReady pings the server every readyInterval until it answers or
// timeout elapses.
func waitReady(ctx context.Context, dsn string, timeout time.Duration) error {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	tick := time.NewTicker(readyInterval)
	defer tick.Stop()
	for {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("database not ready after %s: %w", timeout, err)
		case <-tick.C:
		}
	}
}
