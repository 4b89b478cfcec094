package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Config holds the plain database/sql connection settings used by the
// migrate command. The server itself connects through pgx.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

// Connection wraps a database/sql connection.
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewConnection opens and pings a connection.
func NewConnection(config *Config, logger *slog.Logger) (*Connection, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.Database, config.SSLMode)

	logger = logger.With("component", "database")
	logger.Info("Connecting to database",
		"host", config.Host,
		"port", config.Port,
		"database", config.Database,
		"ssl_mode", config.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{db: db, logger: logger}, nil
}

// DB returns the underlying sql.DB.
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the connection.
func (c *Connection) Close() error {
	c.logger.Info("Closing database connection")
	return c.db.Close()
}
