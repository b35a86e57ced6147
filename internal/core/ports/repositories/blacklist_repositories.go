package repositories

import "context"

// BlacklistWriter records revoked access tokens.
type BlacklistWriter interface {
	// SaveToken inserts a revoked token together with its owner's email.
	// Rows are never updated or expired.
	SaveToken(ctx context.Context, token string, email string) error
}

// BlacklistReader checks token revocation state.
type BlacklistReader interface {
	// FindToken reports whether the exact token string has been revoked.
	FindToken(ctx context.Context, token string) (bool, error)
}

// BlacklistRepositoryFacade combines blacklist read and write operations
type BlacklistRepositoryFacade interface {
	BlacklistReader
	BlacklistWriter
}
