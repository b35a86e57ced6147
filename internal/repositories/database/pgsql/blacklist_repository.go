package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
)

type PgxBlacklistRepository struct {
	db *pgxpool.Pool
}

func newPgxBlacklistRepository(db *pgxpool.Pool) portsrepo.BlacklistRepositoryFacade {
	return &PgxBlacklistRepository{db: db}
}

// Ensure PgxBlacklistRepository implements portsrepo.BlacklistRepositoryFacade
var _ portsrepo.BlacklistRepositoryFacade = (*PgxBlacklistRepository)(nil)

// SaveToken inserts a revoked token. Re-blacklisting the same token is a
// no-op, so logout stays idempotent.
func (r *PgxBlacklistRepository) SaveToken(ctx context.Context, token string, email string) error {
	query := `
		INSERT INTO blacklists (token, email, created_at, updated_at)
		VALUES ($1, $2, now(), now());
	`
	if _, err := r.db.Exec(ctx, query, token, email); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return fmt.Errorf("failed to save blacklisted token: %w", err)
	}
	return nil
}

func (r *PgxBlacklistRepository) FindToken(ctx context.Context, token string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM blacklists WHERE token = $1);`
	if err := r.db.QueryRow(ctx, query, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check blacklisted token: %w", err)
	}
	return exists, nil
}
