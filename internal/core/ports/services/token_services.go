package services

import "time"

// TokenSvcFacade issues and validates scoped credentials.
type TokenSvcFacade interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
	IssueAccessToken(email string) (string, error)
	IssueRefreshToken(email string) (string, error)
	IssueEmailToken(email string) (string, error)
	// Decode validates the token signature, expiry and scope and returns
	// the subject email.
	Decode(tokenString, expectedScope string) (string, error)
	AccessTokenTTL() time.Duration
	// RemainingLifetime reports how long until the token expires, zero if
	// it cannot be determined.
	RemainingLifetime(tokenString string) time.Duration
}
