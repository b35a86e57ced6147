package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	imageRepo := newPgxImageRepository(dbPool)
	commentRepo := newPgxCommentRepository(dbPool)
	ratingRepo := newPgxRatingRepository(dbPool)
	tagRepo := newPgxTagRepository(dbPool)
	blacklistRepo := newPgxBlacklistRepository(dbPool)
	searchRepo := newPgxSearchRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:      userRepo,
		ImageRepo:     imageRepo,
		CommentRepo:   commentRepo,
		RatingRepo:    ratingRepo,
		TagRepo:       tagRepo,
		BlacklistRepo: blacklistRepo,
		SearchRepo:    searchRepo,
	}
}
