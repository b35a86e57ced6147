package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	"github.com/snapshare/snapshare-api/internal/models"
	"github.com/snapshare/snapshare-api/internal/utils/mapping"
)

const userColumns = `id, username, email, password_hash, avatar, role, confirmed, banned, refresh_token, reset_password_token, created_at, updated_at`

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.ID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.Avatar,
		&m.Role,
		&m.Confirmed,
		&m.Banned,
		&m.RefreshToken,
		&m.ResetPasswordToken,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (username, email, password_hash, avatar, role, confirmed, banned, refresh_token, reset_password_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		m.Username,
		m.Email,
		m.PasswordHash,
		m.Avatar,
		m.Role,
		m.Confirmed,
		m.Banned,
		m.RefreshToken,
		m.ResetPasswordToken,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	saved := mapping.ToDomainUser(m)
	return &saved, nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, email string, token string) error {
	query := `UPDATE users SET refresh_token = $2, updated_at = now() WHERE email = $1;`
	return r.execUserUpdate(ctx, query, email, sql.NullString{String: token, Valid: token != ""})
}

func (r *PgxUserRepository) ConfirmEmail(ctx context.Context, email string) error {
	query := `UPDATE users SET confirmed = TRUE, updated_at = now() WHERE email = $1;`
	return r.execUserUpdate(ctx, query, email)
}

func (r *PgxUserRepository) UpdateAvatar(ctx context.Context, email string, avatarURL string) error {
	query := `UPDATE users SET avatar = $2, updated_at = now() WHERE email = $1;`
	return r.execUserUpdate(ctx, query, email, avatarURL)
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE email = $1;`
	return r.execUserUpdate(ctx, query, email, passwordHash)
}

func (r *PgxUserRepository) UpdateUsername(ctx context.Context, email string, username string) error {
	query := `UPDATE users SET username = $2, updated_at = now() WHERE email = $1;`
	err := r.execUserUpdate(ctx, query, email, username)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
	}
	return err
}

func (r *PgxUserRepository) UpdateResetToken(ctx context.Context, email string, token string) error {
	query := `UPDATE users SET reset_password_token = $2, updated_at = now() WHERE email = $1;`
	return r.execUserUpdate(ctx, query, email, sql.NullString{String: token, Valid: token != ""})
}

func (r *PgxUserRepository) SetBanned(ctx context.Context, email string, banned bool) error {
	query := `UPDATE users SET banned = $2, updated_at = now() WHERE email = $1;`
	return r.execUserUpdate(ctx, query, email, banned)
}

// execUserUpdate runs a single-row user update and maps a zero row count
// to ErrNotFound.
func (r *PgxUserRepository) execUserUpdate(ctx context.Context, query string, email string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, append([]any{email}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
