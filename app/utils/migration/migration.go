package migration

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Migration is one versioned schema change with its rollback.
type Migration struct {
	Version   int
	Name      string
	UpSQL     string
	DownSQL   string
	AppliedAt time.Time
}

// Migrator applies embedded SQL migrations in version order, tracking them
// in a schema_migrations table.
type Migrator struct {
	db           *sql.DB
	logger       *slog.Logger
	migrationsFS fs.FS
}

// NewMigrator creates a migration manager over the given filesystem.
func NewMigrator(db *sql.DB, logger *slog.Logger, migrationsFS fs.FS) *Migrator {
	return &Migrator{
		db:           db,
		logger:       logger.With("component", "migrator"),
		migrationsFS: migrationsFS,
	}
}

func (m *Migrator) createMigrationsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		checksum VARCHAR(64) NOT NULL
	)`

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// LoadMigrations reads every *.up.sql (with its *.down.sql counterpart)
// from the filesystem, sorted by version.
func (m *Migrator) LoadMigrations() ([]Migration, error) {
	migrations := make([]Migration, 0)

	err := fs.WalkDir(m.migrationsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".up.sql") {
			return nil
		}

		filename := filepath.Base(path)
		parts := strings.Split(filename, "_")
		if len(parts) < 2 {
			m.logger.Warn("skipping migration with unexpected filename", "filename", filename)
			return nil
		}

		version, err := strconv.Atoi(parts[0])
		if err != nil {
			m.logger.Warn("skipping migration with non-numeric version", "filename", filename)
			return nil
		}

		upContent, err := fs.ReadFile(m.migrationsFS, path)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", path, err)
		}

		downPath := strings.Replace(path, ".up.sql", ".down.sql", 1)
		downContent, err := fs.ReadFile(m.migrationsFS, downPath)
		if err != nil {
			return fmt.Errorf("failed to read rollback %s: %w", downPath, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(strings.Join(parts[1:], "_"), ".up.sql"),
			UpSQL:   string(upContent),
			DownSQL: string(downContent),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// AppliedMigrations returns the migrations already recorded.
func (m *Migrator) AppliedMigrations() ([]Migration, error) {
	rows, err := m.db.Query(`SELECT version, name, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	var migrations []Migration
	for rows.Next() {
		var migration Migration
		if err := rows.Scan(&migration.Version, &migration.Name, &migration.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		migrations = append(migrations, migration)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating migration rows: %w", err)
	}
	return migrations, nil
}

// Up applies every pending migration.
func (m *Migrator) Up() error {
	if err := m.createMigrationsTable(); err != nil {
		return err
	}

	all, err := m.LoadMigrations()
	if err != nil {
		return err
	}
	applied, err := m.AppliedMigrations()
	if err != nil {
		return err
	}

	appliedSet := make(map[int]bool, len(applied))
	for _, migration := range applied {
		appliedSet[migration.Version] = true
	}

	for _, migration := range all {
		if appliedSet[migration.Version] {
			continue
		}
		if err := m.apply(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
		}
		m.logger.Info("Applied migration", "version", migration.Version, "name", migration.Name)
	}
	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down() error {
	applied, err := m.AppliedMigrations()
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		m.logger.Info("No migrations to roll back")
		return nil
	}
	last := applied[len(applied)-1]

	all, err := m.LoadMigrations()
	if err != nil {
		return err
	}

	for _, migration := range all {
		if migration.Version != last.Version {
			continue
		}
		if err := m.rollback(migration); err != nil {
			return fmt.Errorf("failed to roll back migration %d: %w", migration.Version, err)
		}
		m.logger.Info("Rolled back migration", "version", migration.Version, "name", migration.Name)
		return nil
	}
	return fmt.Errorf("migration %d not found in filesystem", last.Version)
}

// Status logs which migrations are applied and which are pending.
func (m *Migrator) Status() error {
	if err := m.createMigrationsTable(); err != nil {
		return err
	}

	all, err := m.LoadMigrations()
	if err != nil {
		return err
	}
	applied, err := m.AppliedMigrations()
	if err != nil {
		return err
	}

	appliedSet := make(map[int]time.Time, len(applied))
	for _, migration := range applied {
		appliedSet[migration.Version] = migration.AppliedAt
	}

	for _, migration := range all {
		if appliedAt, ok := appliedSet[migration.Version]; ok {
			m.logger.Info("applied", "version", migration.Version, "name", migration.Name, "applied_at", appliedAt)
		} else {
			m.logger.Info("pending", "version", migration.Version, "name", migration.Name)
		}
	}
	return nil
}

func (m *Migrator) apply(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.UpSQL); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	checksum := sha256.Sum256([]byte(migration.UpSQL))
	if _, err := tx.Exec(
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		migration.Version, migration.Name, hex.EncodeToString(checksum[:]),
	); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

func (m *Migrator) rollback(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.DownSQL); err != nil {
		return fmt.Errorf("failed to execute rollback: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = $1`, migration.Version); err != nil {
		return fmt.Errorf("failed to unrecord migration: %w", err)
	}

	return tx.Commit()
}
