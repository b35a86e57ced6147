package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	"github.com/snapshare/snapshare-api/internal/models"
	"github.com/snapshare/snapshare-api/internal/utils/mapping"
)

const commentColumns = `id, content, user_id, image_id, created_at, updated_at`

type PgxCommentRepository struct {
	db *pgxpool.Pool
}

func newPgxCommentRepository(db *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{db: db}
}

// Ensure PgxCommentRepository implements portsrepo.CommentRepositoryFacade
var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func scanComment(row pgx.Row) (models.Comment, error) {
	var m models.Comment
	err := row.Scan(&m.ID, &m.Content, &m.UserID, &m.ImageID, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1;`
	m, err := scanComment(r.db.QueryRow(ctx, query, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	comment := mapping.ToDomainComment(m)
	return &comment, nil
}

func (r *PgxCommentRepository) FindCommentsByImage(ctx context.Context, imageID int64) ([]domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE image_id = $1 ORDER BY created_at, id;`
	rows, err := r.db.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var ms []models.Comment
	for rows.Next() {
		m, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return mapping.ToDomainCommentSlice(ms), nil
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (content, user_id, image_id, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING ` + commentColumns + `;
	`
	m, err := scanComment(r.db.QueryRow(ctx, query, comment.Content, comment.UserID, comment.ImageID))
	if err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	saved := mapping.ToDomainComment(m)
	return &saved, nil
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, commentID int64, content string) error {
	query := `UPDATE comments SET content = $2, updated_at = now() WHERE id = $1;`
	tag, err := r.db.Exec(ctx, query, commentID, content)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1;`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
