package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	"github.com/snapshare/snapshare-api/internal/models"
	"github.com/snapshare/snapshare-api/internal/utils/mapping"
)

type PgxSearchRepository struct {
	db *pgxpool.Pool
}

func newPgxSearchRepository(db *pgxpool.Pool) portsrepo.SearchRepositoryFacade {
	return &PgxSearchRepository{db: db}
}

// Ensure PgxSearchRepository implements portsrepo.SearchRepositoryFacade
var _ portsrepo.SearchRepositoryFacade = (*PgxSearchRepository)(nil)

// SearchImages builds a WHERE clause from the provided filters only.
// Rating filters compare against the per-image average score.
func (r *PgxSearchRepository) SearchImages(ctx context.Context, filter portsrepo.ImageSearchFilter) ([]domain.Image, error) {
	var (
		conditions []string
		args       []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf("i.content ILIKE %s", arg("%"+filter.Keyword+"%")))
	}
	if filter.Tag != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM image_m2m_tags m JOIN tags t ON t.id = m.tag_id WHERE m.image_id = i.id AND t.name = %s)",
			arg(filter.Tag)))
	}
	if filter.MinRating != nil {
		conditions = append(conditions, fmt.Sprintf("r.avg_rating >= %s", arg(*filter.MinRating)))
	}
	if filter.MaxRating != nil {
		conditions = append(conditions, fmt.Sprintf("r.avg_rating <= %s", arg(*filter.MaxRating)))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("i.created_at >= %s", arg(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("i.created_at <= %s", arg(*filter.EndDate)))
	}

	query := `
		SELECT i.id, i.image_url, i.image_transformed_url, i.content, i.user_id, i.created_at, i.updated_at
		FROM images i
		LEFT JOIN (
			SELECT image_id, AVG(rating_score) AS avg_rating
			FROM ratings
			GROUP BY image_id
		) r ON r.image_id = i.id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY i.created_at DESC, i.id DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search images: %w", err)
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
		tags, err := loadImageTags(ctx, r.db, m.ID)
		if err != nil {
			return nil, err
		}
		images = append(images, mapping.ToDomainImage(m, tags))
	}
	return images, nil
}
