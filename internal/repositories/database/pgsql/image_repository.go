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

const imageColumns = `id, image_url, image_transformed_url, content, user_id, created_at, updated_at`

type PgxImageRepository struct {
	BaseRepository
}

func newPgxImageRepository(db *pgxpool.Pool) portsrepo.ImageRepositoryFacade {
	return &PgxImageRepository{BaseRepository{Pool: db}}
}

// Ensure PgxImageRepository implements portsrepo.ImageRepositoryFacade
var _ portsrepo.ImageRepositoryFacade = (*PgxImageRepository)(nil)

func scanImage(row pgx.Row) (models.Image, error) {
	var m models.Image
	err := row.Scan(
		&m.ID,
		&m.URL,
		&m.TransformedURL,
		&m.Content,
		&m.UserID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// loadImageTags fetches the tags linked to an image, name-ordered.
func loadImageTags(ctx context.Context, q queryer, imageID int64) ([]models.Tag, error) {
	query := `
		SELECT t.id, t.name
		FROM tags t
		JOIN image_m2m_tags m ON m.tag_id = t.id
		WHERE m.image_id = $1
		ORDER BY t.name;
	`
	rows, err := q.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load image tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// queryer abstracts pool vs transaction for the shared tag loader.
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxImageRepository) FindImageByID(ctx context.Context, imageID int64) (*domain.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1;`
	m, err := scanImage(r.Pool.QueryRow(ctx, query, imageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find image: %w", err)
	}

	tags, err := loadImageTags(ctx, r.Pool, imageID)
	if err != nil {
		return nil, err
	}
	image := mapping.ToDomainImage(m, tags)
	return &image, nil
}

func (r *PgxImageRepository) FindImagesByUser(ctx context.Context, userID int64, skip int, limit int) ([]domain.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE user_id = $1 ORDER BY created_at DESC, id DESC OFFSET $2 LIMIT $3;`
	rows, err := r.Pool.Query(ctx, query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	var ms []models.Image
	for rows.Next() {
		m, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate images: %w", err)
	}

	images := make([]domain.Image, 0, len(ms))
	for _, m := range ms {
		tags, err := loadImageTags(ctx, r.Pool, m.ID)
		if err != nil {
			return nil, err
		}
		images = append(images, mapping.ToDomainImage(m, tags))
	}
	return images, nil
}

func (r *PgxImageRepository) CountImagesByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM images WHERE user_id = $1;`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}
	return count, nil
}

// SaveImage persists the image row and its tag links in one transaction.
func (r *PgxImageRepository) SaveImage(ctx context.Context, image domain.Image, tagNames []string) (*domain.Image, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var imageID int64
	query := `
		INSERT INTO images (image_url, content, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id;
	`
	if err := tx.QueryRow(ctx, query, image.URL, image.Content, image.UserID).Scan(&imageID); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	for _, name := range tagNames {
		if err := linkTag(ctx, tx, imageID, name); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindImageByID(ctx, imageID)
}

func (r *PgxImageRepository) UpdateImage(ctx context.Context, image domain.Image) error {
	query := `UPDATE images SET image_url = $2, content = $3, updated_at = now() WHERE id = $1;`
	tag, err := r.Pool.Exec(ctx, query, image.ID, image.URL, image.Content)
	if err != nil {
		return fmt.Errorf("failed to update image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxImageRepository) SetTransformedURL(ctx context.Context, imageID int64, url string) error {
	query := `UPDATE images SET image_transformed_url = $2, updated_at = now() WHERE id = $1;`
	tag, err := r.Pool.Exec(ctx, query, imageID, url)
	if err != nil {
		return fmt.Errorf("failed to set transformed URL: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxImageRepository) AddImageTag(ctx context.Context, imageID int64, tagName string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := linkTag(ctx, tx, imageID, tagName); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxImageRepository) DeleteImage(ctx context.Context, imageID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM images WHERE id = $1;`, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// linkTag upserts the tag by name and links it to the image.
func linkTag(ctx context.Context, tx pgx.Tx, imageID int64, name string) error {
	var tagID int64
	upsert := `
		INSERT INTO tags (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;
	`
	if err := tx.QueryRow(ctx, upsert, name).Scan(&tagID); err != nil {
		return fmt.Errorf("failed to upsert tag %q: %w", name, err)
	}

	link := `
		INSERT INTO image_m2m_tags (image_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`
	if _, err := tx.Exec(ctx, link, imageID, tagID); err != nil {
		return fmt.Errorf("failed to link tag %q: %w", name, err)
	}
	return nil
}
