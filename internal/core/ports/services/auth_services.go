package services

import (
	"context"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// AuthSvcFacade covers registration, login and the full credential
// lifecycle.
type AuthSvcFacade interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*dto.TokenPair, error)
	// Logout blacklists the presented access token.
	Logout(ctx context.Context, accessToken string, user *domain.User) error
	// Refresh exchanges a valid refresh token for a new pair, rotating
	// the stored refresh token.
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	// ConfirmEmail flips the confirmed flag. The boolean reports whether
	// the account was already confirmed.
	ConfirmEmail(ctx context.Context, emailToken string) (bool, error)
	// RequestConfirmation re-sends the confirmation email for an
	// unconfirmed account.
	RequestConfirmation(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	// GoogleSignIn verifies a Google ID token, provisioning the account
	// on first sight, and returns a token pair.
	GoogleSignIn(ctx context.Context, idToken string) (*dto.TokenPair, error)
}
