package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
	"github.com/snapshare/snapshare-api/internal/middleware"
	"github.com/snapshare/snapshare-api/internal/utils"
)

// authService implements AuthSvcFacade. It owns the account lifecycle:
// signup, confirmation, login, token rotation and revocation.
type authService struct {
	userRepo   portsrepo.UserRepositoryFacade
	tokenSvc   portssvc.TokenSvcFacade
	sessionSvc portssvc.SessionSvcFacade
	googleSvc  portssvc.GoogleAuthSvcFacade
	emailSvc   portssvc.EmailSenderSvc
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	userRepo portsrepo.UserRepositoryFacade,
	tokenSvc portssvc.TokenSvcFacade,
	sessionSvc portssvc.SessionSvcFacade,
	googleSvc portssvc.GoogleAuthSvcFacade,
	emailSvc portssvc.EmailSenderSvc,
) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:   userRepo,
		tokenSvc:   tokenSvc,
		sessionSvc: sessionSvc,
		googleSvc:  googleSvc,
		emailSvc:   emailSvc,
	}
}

// Signup registers a new account. The very first account on the
// instance is promoted to admin.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("Account already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.NewConflictError("Username already taken")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	hash, err := s.tokenSvc.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleAdmin
	}

	user := domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Avatar:       utils.GravatarURL(req.Email, 255),
		Role:         role,
	}

	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Account already exists")
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.sendConfirmationEmail(ctx, saved)

	return saved, nil
}

// Login authenticates and returns a fresh bearer pair, rotating the
// stored refresh token. The checks run in a fixed order so each failure
// mode surfaces its own detail string.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid email")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.Confirmed {
		return nil, apperrors.NewUnauthorizedError("Email not confirmed")
	}
	if !s.tokenSvc.VerifyPassword(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Invalid password")
	}
	if user.Banned {
		return nil, apperrors.NewForbiddenError("Your account is banned")
	}

	pair, err := s.issueTokenPair(ctx, email)
	if err != nil {
		return nil, err
	}

	// A freshly minted token should never already be revoked. Kept as a
	// guard against secret reuse across deployments.
	blacklisted, err := s.sessionSvc.IsBlacklisted(ctx, pair.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if blacklisted {
		return nil, apperrors.NewUnauthorizedError("Token is blacklisted")
	}

	return pair, nil
}

// Logout revokes the presented access token.
func (s *authService) Logout(ctx context.Context, accessToken string, user *domain.User) error {
	if err := s.sessionSvc.Blacklist(ctx, accessToken, user.Email); err != nil {
		return err
	}
	// The snapshot serves no one after logout, drop it eagerly.
	s.sessionSvc.EvictUser(ctx, user.Email)
	return nil
}

// Refresh exchanges a refresh token for a new pair. The presented token
// must exactly match the stored value; on mismatch the stored token is
// cleared so a stolen old token cannot be retried.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	email, err := s.tokenSvc.Decode(refreshToken, utils.ScopeRefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Could not validate credentials")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Could not validate credentials")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		if err := s.userRepo.UpdateRefreshToken(ctx, email, ""); err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("failed to clear refresh token after mismatch", slog.String("email", email), slog.String("error", err.Error()))
		} else if _, err := s.sessionSvc.RefreshUser(ctx, email); err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("failed to refresh cached user", slog.String("email", email), slog.String("error", err.Error()))
		}
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	return s.issueTokenPair(ctx, email)
}

// ConfirmEmail validates an email-scope token and flips the confirmed
// flag. Returns true when the account was already confirmed.
func (s *authService) ConfirmEmail(ctx context.Context, emailToken string) (bool, error) {
	email, err := s.tokenSvc.Decode(emailToken, utils.ScopeEmailToken)
	if err != nil {
		return false, apperrors.NewBadRequestError("Verification error")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, apperrors.NewBadRequestError("Verification error")
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Confirmed {
		return true, nil
	}

	if err := s.userRepo.ConfirmEmail(ctx, email); err != nil {
		return false, fmt.Errorf("failed to confirm email: %w", err)
	}
	if _, err := s.sessionSvc.RefreshUser(ctx, email); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to refresh cached user", slog.String("email", email), slog.String("error", err.Error()))
	}
	return false, nil
}

// RequestConfirmation re-sends the confirmation email. Unknown addresses
// are silently ignored so the endpoint does not leak which emails are
// registered.
func (s *authService) RequestConfirmation(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Confirmed {
		return nil
	}
	s.sendConfirmationEmail(ctx, user)
	return nil
}

// ForgotPassword stores a one-time reset token and emails it to the
// account.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Not found user.")
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	resetToken := utils.NewResetToken()
	if err := s.userRepo.UpdateResetToken(ctx, email, resetToken); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	if _, err := s.sessionSvc.RefreshUser(ctx, email); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to refresh cached user", slog.String("email", email), slog.String("error", err.Error()))
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	mailCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.emailSvc.SendPasswordReset(mailCtx, user.Email, user.Username, resetToken); err != nil {
			logger.Error("failed to send password reset email", slog.String("email", email), slog.String("error", err.Error()))
		}
	}()
	return nil
}

// ResetPassword consumes a reset token and replaces the password. The
// token is single-use: it is cleared on success.
func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Not found user.")
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user.ResetPasswordToken == "" || user.ResetPasswordToken != req.ResetPasswordToken {
		return apperrors.NewNotFoundError("Password reset tokens doesn't match.")
	}
	if req.Password != req.ConfirmPassword {
		return apperrors.NewNotFoundError("New password is not match.")
	}

	hash, err := s.tokenSvc.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, req.Email, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.userRepo.UpdateResetToken(ctx, req.Email, ""); err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}
	if _, err := s.sessionSvc.RefreshUser(ctx, req.Email); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to refresh cached user", slog.String("email", req.Email), slog.String("error", err.Error()))
	}
	return nil
}

// GoogleSignIn verifies a Google ID token and returns a bearer pair,
// provisioning a confirmed account on first sight.
func (s *authService) GoogleSignIn(ctx context.Context, idToken string) (*dto.TokenPair, error) {
	info, err := s.googleSvc.ValidateIDToken(ctx, idToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid Google ID token")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user, err = s.provisionGoogleUser(ctx, info)
		if err != nil {
			return nil, err
		}
	}
	if user.Banned {
		return nil, apperrors.NewForbiddenError("Your account is banned")
	}

	return s.issueTokenPair(ctx, user.Email)
}

// issueTokenPair mints a new access/refresh pair, persists the rotated
// refresh token and rewrites the cached user snapshot.
func (s *authService) issueTokenPair(ctx context.Context, email string) (*dto.TokenPair, error) {
	accessToken, err := s.tokenSvc.IssueAccessToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.IssueRefreshToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, email, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	if _, err := s.sessionSvc.RefreshUser(ctx, email); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to refresh cached user", slog.String("email", email), slog.String("error", err.Error()))
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) provisionGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	username := strings.SplitN(info.Email, "@", 2)[0]
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		suffix, err := utils.GenerateSecureRandomString(3)
		if err != nil {
			return nil, fmt.Errorf("failed to generate username suffix: %w", err)
		}
		username = username + "_" + suffix
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	// Google accounts never log in with a local password, but the column
	// is non-null; store a hash of random bytes.
	randomPassword, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder password: %w", err)
	}
	hash, err := s.tokenSvc.HashPassword(randomPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	avatar := info.Picture
	if avatar == "" {
		avatar = utils.GravatarURL(info.Email, 255)
	}

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleAdmin
	}

	user := domain.User{
		Username:     username,
		Email:        info.Email,
		PasswordHash: hash,
		Avatar:       avatar,
		Role:         role,
		Confirmed:    true,
	}
	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	return saved, nil
}

// sendConfirmationEmail issues an email-scope token and dispatches the
// confirmation mail in the background. Delivery failures are logged, not
// surfaced, so a slow or flaky mail relay cannot block signup.
func (s *authService) sendConfirmationEmail(ctx context.Context, user *domain.User) {
	emailToken, err := s.tokenSvc.IssueEmailToken(user.Email)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to issue email token", slog.String("email", user.Email), slog.String("error", err.Error()))
		return
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	mailCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.emailSvc.SendConfirmation(mailCtx, user.Email, user.Username, emailToken); err != nil {
			logger.Error("failed to send confirmation email", slog.String("email", user.Email), slog.String("error", err.Error()))
		}
	}()
}
