package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
	"github.com/snapshare/snapshare-api/internal/middleware"
)

// userService implements UserSvcFacade.
type userService struct {
	userRepo   portsrepo.UserRepositoryFacade
	imageRepo  portsrepo.ImageRepositoryFacade
	sessionSvc portssvc.SessionSvcFacade
	storageSvc portssvc.ObjectStorageSvc
}

// NewUserService creates a new instance of userService.
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	imageRepo portsrepo.ImageRepositoryFacade,
	sessionSvc portssvc.SessionSvcFacade,
	storageSvc portssvc.ObjectStorageSvc,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		imageRepo:  imageRepo,
		sessionSvc: sessionSvc,
		storageSvc: storageSvc,
	}
}

func (s *userService) Info(ctx context.Context, user *domain.User) (*dto.UserInfo, error) {
	count, err := s.imageRepo.CountImagesByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count uploaded images: %w", err)
	}
	return &dto.UserInfo{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		UploadedImages: count,
		Avatar:         user.Avatar,
		Role:           string(user.Role),
	}, nil
}

func (s *userService) Profile(ctx context.Context, username string) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	count, err := s.imageRepo.CountImagesByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count uploaded images: %w", err)
	}
	return &dto.UserProfile{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		UploadedImages: count,
		Avatar:         user.Avatar,
	}, nil
}

func (s *userService) ChangeUsername(ctx context.Context, user *domain.User, username string) error {
	if username == user.Username {
		return nil
	}
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return apperrors.NewConflictError("Username already taken")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check existing username: %w", err)
	}

	if err := s.userRepo.UpdateUsername(ctx, user.Email, username); err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}
	if _, err := s.sessionSvc.RefreshUser(ctx, user.Email); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to refresh cached user", slog.String("email", user.Email), slog.String("error", err.Error()))
	}
	return nil
}

// UpdateAvatar stores the uploaded file in object storage and records
// the resulting URL on the account.
func (s *userService) UpdateAvatar(ctx context.Context, user *domain.User, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", apperrors.NewBadRequestError("Could not read uploaded file")
	}
	defer src.Close()

	objectName := fmt.Sprintf("avatars/%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	avatarURL, err := s.storageSvc.Upload(ctx, objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.userRepo.UpdateAvatar(ctx, user.Email, avatarURL); err != nil {
		return "", fmt.Errorf("failed to update avatar: %w", err)
	}
	if _, err := s.sessionSvc.RefreshUser(ctx, user.Email); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to refresh cached user", slog.String("email", user.Email), slog.String("error", err.Error()))
	}
	return avatarURL, nil
}

// SetBan flips the ban flag on the target account. Moderator and admin
// accounts cannot be banned. The cached session of the target is left to
// expire naturally, so the ban takes effect on login and after cache TTL
// for outstanding sessions.
func (s *userService) SetBan(ctx context.Context, actor *domain.User, username string, banned bool) error {
	target, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found")
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if target.ID == actor.ID {
		return apperrors.NewForbiddenError("Operation forbidden")
	}
	if target.Role.CanModerate() {
		return apperrors.NewForbiddenError("Operation forbidden")
	}

	if err := s.userRepo.SetBanned(ctx, target.Email, banned); err != nil {
		return fmt.Errorf("failed to set ban flag: %w", err)
	}
	if banned {
		middleware.GetLoggerFromCtx(ctx).Warn("user banned; outstanding tokens and cached session remain valid until expiry",
			slog.String("email", target.Email))
	}
	return nil
}
