package services

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// GoogleAuthSvcFacade validates Google ID tokens and exchanges
// authorization codes from the redirect flow.
type GoogleAuthSvcFacade interface {
	ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
	// ExchangeCode trades an authorization code for the ID token
	// embedded in Google's token response.
	ExchangeCode(ctx context.Context, code string) (string, error)
	// AuthCodeURL builds the Google consent page URL for the given
	// anti-forgery state.
	AuthCodeURL(state string) string
}
