package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"studio/app/port"
)

// AdminRepository implements port.AdminRepository for PostgreSQL
type AdminRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewAdminRepository creates a new PostgreSQL admin repository
func NewAdminRepository(db Querier, logger *slog.Logger) port.AdminRepository {
	return &AdminRepository{
		db:     db,
		logger: logger.With("component", "admin_repository"),
	}
}

// Exists reports whether an admins row exists for the username.
func (r *AdminRepository) Exists(ctx context.Context, username string) (bool, error) {
	var found string
	err := r.db.QueryRow(ctx, `SELECT username FROM admins WHERE username = $1`, username).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		r.logger.Error("failed to check admin", "username", username, "error", err)
		return false, fmt.Errorf("failed to check admin: %w", err)
	}
	return true, nil
}
