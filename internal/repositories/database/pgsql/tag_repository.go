package pgsql

import (
	"context"
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

type PgxTagRepository struct {
	db *pgxpool.Pool
}

func newPgxTagRepository(db *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{db: db}
}

// Ensure PgxTagRepository implements portsrepo.TagRepositoryFacade
var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

func (r *PgxTagRepository) FindTags(ctx context.Context, offset int, limit int) ([]domain.Tag, error) {
	query := `SELECT id, name FROM tags ORDER BY name OFFSET $1 LIMIT $2;`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var ms []models.Tag
	for rows.Next() {
		var m models.Tag
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return mapping.ToDomainTagSlice(ms), nil
}

func (r *PgxTagRepository) FindTagByID(ctx context.Context, tagID int64) (*domain.Tag, error) {
	var m models.Tag
	err := r.db.QueryRow(ctx, `SELECT id, name FROM tags WHERE id = $1;`, tagID).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	tag := mapping.ToDomainTag(m)
	return &tag, nil
}

func (r *PgxTagRepository) FindTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	var m models.Tag
	err := r.db.QueryRow(ctx, `SELECT id, name FROM tags WHERE name = $1;`, name).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	tag := mapping.ToDomainTag(m)
	return &tag, nil
}

// SaveTag creates the tag, or returns the existing row with that name.
func (r *PgxTagRepository) SaveTag(ctx context.Context, name string) (*domain.Tag, error) {
	var m models.Tag
	query := `
		INSERT INTO tags (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name;
	`
	if err := r.db.QueryRow(ctx, query, name).Scan(&m.ID, &m.Name); err != nil {
		return nil, fmt.Errorf("failed to save tag: %w", err)
	}
	tag := mapping.ToDomainTag(m)
	return &tag, nil
}

func (r *PgxTagRepository) UpdateTag(ctx context.Context, tagID int64, name string) (*domain.Tag, error) {
	var m models.Tag
	query := `UPDATE tags SET name = $2 WHERE id = $1 RETURNING id, name;`
	err := r.db.QueryRow(ctx, query, tagID, name).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	tag := mapping.ToDomainTag(m)
	return &tag, nil
}

func (r *PgxTagRepository) DeleteTag(ctx context.Context, tagID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id = $1;`, tagID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
