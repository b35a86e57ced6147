package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
)

// tagService implements TagSvcFacade.
type tagService struct {
	tagRepo portsrepo.TagRepositoryFacade
}

// NewTagService creates a new instance of tagService.
func NewTagService(tagRepo portsrepo.TagRepositoryFacade) portssvc.TagSvcFacade {
	return &tagService{tagRepo: tagRepo}
}

// Create returns the existing tag when the name is already taken. Tag
// names are stored lowercase so lookups are case-insensitive.
func (s *tagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	name = normalizeTagName(name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Tag name must not be empty")
	}
	tag, err := s.tagRepo.SaveTag(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to save tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) List(ctx context.Context, offset, limit int) ([]domain.Tag, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultImagePageSize
	}
	if limit > maxImagePageSize {
		limit = maxImagePageSize
	}
	return s.tagRepo.FindTags(ctx, offset, limit)
}

func (s *tagService) GetByID(ctx context.Context, tagID int64) (*domain.Tag, error) {
	tag, err := s.tagRepo.FindTagByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Tag not found")
		}
		return nil, fmt.Errorf("failed to look up tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) Update(ctx context.Context, actor *domain.User, tagID int64, name string) (*domain.Tag, error) {
	if !actor.Role.CanModerate() {
		return nil, apperrors.NewForbiddenError("Operation forbidden")
	}
	name = normalizeTagName(name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Tag name must not be empty")
	}
	if _, err := s.GetByID(ctx, tagID); err != nil {
		return nil, err
	}

	tag, err := s.tagRepo.UpdateTag(ctx, tagID, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Tag name already in use")
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, actor *domain.User, tagID int64) error {
	if !actor.Role.CanModerate() {
		return apperrors.NewForbiddenError("Operation forbidden")
	}
	if _, err := s.GetByID(ctx, tagID); err != nil {
		return err
	}
	if err := s.tagRepo.DeleteTag(ctx, tagID); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

func normalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
