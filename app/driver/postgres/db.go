package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"studio/app/config"
)

const (
	connectTimeout    = 15 * time.Second
	healthPingTimeout = 3 * time.Second
	connLifetime      = 45 * time.Minute
	connIdleTime      = 10 * time.Minute
	healthCheckPeriod = time.Minute
)

// DB wraps the pgx pool shared by the profile, review and admin repositories.
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect builds a pool from the service configuration and verifies the
// database is reachable before handing it out. Pool sizing comes from
// DB_MAX_CONNS / DB_MIN_CONNS.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(connString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolConfig.MaxConns = cfg.DatabaseMaxConns
	poolConfig.MinConns = cfg.DatabaseMinConns
	poolConfig.MaxConnLifetime = connLifetime
	poolConfig.MaxConnIdleTime = connIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping %s: %w", net.JoinHostPort(cfg.DatabaseHost, cfg.DatabasePort), err)
	}

	logger.Info("connected to postgres",
		"host", cfg.DatabaseHost,
		"database", cfg.DatabaseName,
		"pool_max", cfg.DatabaseMaxConns,
		"pool_min", cfg.DatabaseMinConns)

	return &DB{pool: pool, logger: logger}, nil
}

// Pool exposes the underlying pool; it satisfies Querier for the repositories.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// HealthCheck pings the database. The ping is bounded so a saturated pool
// cannot hang the health endpoint.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.pool == nil {
		return fmt.Errorf("pool not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close drains the pool and logs its lifetime acquire stats.
func (db *DB) Close() {
	if db.pool == nil {
		return
	}

	stat := db.pool.Stat()
	db.pool.Close()
	db.logger.Info("postgres pool closed",
		"total_acquires", stat.AcquireCount(),
		"canceled_acquires", stat.CanceledAcquireCount())
}

// connString assembles a URL-form DSN so credentials with reserved
// characters survive percent-encoding.
func connString(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DatabaseUser, cfg.DatabasePassword),
		Host:     net.JoinHostPort(cfg.DatabaseHost, cfg.DatabasePort),
		Path:     "/" + cfg.DatabaseName,
		RawQuery: url.Values{"sslmode": {cfg.DatabaseSSLMode}}.Encode(),
	}
	return u.String()
}
