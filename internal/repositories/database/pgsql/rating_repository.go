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

const ratingColumns = `id, user_id, image_id, rating_score, created_at, updated_at`

type PgxRatingRepository struct {
	db *pgxpool.Pool
}

func newPgxRatingRepository(db *pgxpool.Pool) portsrepo.RatingRepositoryFacade {
	return &PgxRatingRepository{db: db}
}

// Ensure PgxRatingRepository implements portsrepo.RatingRepositoryFacade
var _ portsrepo.RatingRepositoryFacade = (*PgxRatingRepository)(nil)

func scanRating(row pgx.Row) (models.Rating, error) {
	var m models.Rating
	err := row.Scan(&m.ID, &m.UserID, &m.ImageID, &m.Score, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxRatingRepository) FindRatingByID(ctx context.Context, ratingID int64) (*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1;`
	m, err := scanRating(r.db.QueryRow(ctx, query, ratingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	rating := mapping.ToDomainRating(m)
	return &rating, nil
}

func (r *PgxRatingRepository) FindRatingByUserAndImage(ctx context.Context, userID int64, imageID int64) (*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE user_id = $1 AND image_id = $2;`
	m, err := scanRating(r.db.QueryRow(ctx, query, userID, imageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	rating := mapping.ToDomainRating(m)
	return &rating, nil
}

func (r *PgxRatingRepository) FindRatingsByImage(ctx context.Context, imageID int64) ([]domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE image_id = $1 ORDER BY id;`
	rows, err := r.db.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var ms []models.Rating
	for rows.Next() {
		m, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ratings: %w", err)
	}
	return mapping.ToDomainRatingSlice(ms), nil
}

func (r *PgxRatingRepository) SaveRating(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	query := `
		INSERT INTO ratings (user_id, image_id, rating_score, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING ` + ratingColumns + `;
	`
	m, err := scanRating(r.db.QueryRow(ctx, query, rating.UserID, rating.ImageID, rating.Score))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // one rating per user per image
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}
	saved := mapping.ToDomainRating(m)
	return &saved, nil
}

func (r *PgxRatingRepository) DeleteRating(ctx context.Context, ratingID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ratings WHERE id = $1;`, ratingID)
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
