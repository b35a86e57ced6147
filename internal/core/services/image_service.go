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
	"github.com/snapshare/snapshare-api/internal/utils"
)

const (
	defaultImagePageSize = 10
	maxImagePageSize     = 100
)

// imageService implements ImageSvcFacade.
type imageService struct {
	imageRepo  portsrepo.ImageRepositoryFacade
	storageSvc portssvc.ObjectStorageSvc
}

// NewImageService creates a new instance of imageService.
func NewImageService(imageRepo portsrepo.ImageRepositoryFacade, storageSvc portssvc.ObjectStorageSvc) portssvc.ImageSvcFacade {
	return &imageService{imageRepo: imageRepo, storageSvc: storageSvc}
}

// Upload stores the file in object storage and persists the record with
// its tags.
func (s *imageService) Upload(ctx context.Context, user *domain.User, file *multipart.FileHeader, req dto.CreateImageRequest) (*domain.Image, error) {
	if len(req.Tags) > domain.MaxTagsPerImage {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Maximum %d tags allowed", domain.MaxTagsPerImage))
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("Could not read uploaded file")
	}
	defer src.Close()

	objectName := fmt.Sprintf("images/%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	imageURL, err := s.storageSvc.Upload(ctx, objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	image := domain.Image{
		URL:     imageURL,
		Content: req.Content,
		UserID:  user.ID,
	}
	saved, err := s.imageRepo.SaveImage(ctx, image, req.Tags)
	if err != nil {
		// The record failed but the object is already stored; remove it
		// so storage does not accumulate orphans.
		if delErr := s.storageSvc.Delete(ctx, objectName); delErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("failed to remove orphaned object", slog.String("object", objectName), slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("failed to save image: %w", err)
	}
	return saved, nil
}

func (s *imageService) GetByID(ctx context.Context, imageID int64) (*domain.Image, error) {
	image, err := s.imageRepo.FindImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Image not found")
		}
		return nil, fmt.Errorf("failed to look up image: %w", err)
	}
	return image, nil
}

func (s *imageService) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]domain.Image, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultImagePageSize
	}
	if limit > maxImagePageSize {
		limit = maxImagePageSize
	}
	return s.imageRepo.FindImagesByUser(ctx, userID, skip, limit)
}

func (s *imageService) UpdateContent(ctx context.Context, actor *domain.User, imageID int64, content string) (*domain.Image, error) {
	image, err := s.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if image.UserID != actor.ID && !actor.Role.CanModerate() {
		return nil, apperrors.NewForbiddenError("Operation forbidden")
	}

	image.Content = content
	if err := s.imageRepo.UpdateImage(ctx, *image); err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}
	return s.GetByID(ctx, imageID)
}

func (s *imageService) AddTag(ctx context.Context, actor *domain.User, req dto.AddTagRequest) (*domain.Image, error) {
	image, err := s.GetByID(ctx, req.ImageID)
	if err != nil {
		return nil, err
	}
	if image.UserID != actor.ID && !actor.Role.CanModerate() {
		return nil, apperrors.NewForbiddenError("Operation forbidden")
	}
	if len(image.Tags) >= domain.MaxTagsPerImage {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Maximum %d tags allowed", domain.MaxTagsPerImage))
	}
	for _, tag := range image.Tags {
		if tag.Name == req.Tag {
			return image, nil
		}
	}

	if err := s.imageRepo.AddImageTag(ctx, req.ImageID, req.Tag); err != nil {
		return nil, fmt.Errorf("failed to add tag: %w", err)
	}
	return s.GetByID(ctx, req.ImageID)
}

// Transform derives a variant URL from the stored image, persists it and
// returns it together with a QR code.
func (s *imageService) Transform(ctx context.Context, actor *domain.User, imageID int64, req dto.TransformRequest) (*dto.TransformedImageResponse, error) {
	image, err := s.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if image.UserID != actor.ID && !actor.Role.CanModerate() {
		return nil, apperrors.NewForbiddenError("Operation forbidden")
	}

	transformedURL, err := utils.BuildTransformURL(image.URL, utils.TransformParams{
		Type:    req.Type,
		Width:   req.Width,
		Height:  req.Height,
		Effect:  req.Effect,
		Overlay: req.Overlay,
	})
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid transformation type")
	}

	if err := s.imageRepo.SetTransformedURL(ctx, imageID, transformedURL); err != nil {
		return nil, fmt.Errorf("failed to store transformed URL: %w", err)
	}

	qr, err := utils.QRCodeBase64(transformedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	return &dto.TransformedImageResponse{
		ImageURL:       image.URL,
		TransformedURL: transformedURL,
		QRCode:         qr,
	}, nil
}

// GetTransformed returns the previously stored variant URL of an image
// together with a QR code pointing at it.
func (s *imageService) GetTransformed(ctx context.Context, imageID int64) (*dto.TransformedImageResponse, error) {
	image, err := s.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if image.TransformedURL == "" {
		return nil, apperrors.NewNotFoundError("Image has no transformed version")
	}

	qr, err := utils.QRCodeBase64(image.TransformedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	return &dto.TransformedImageResponse{
		ImageURL:       image.URL,
		TransformedURL: image.TransformedURL,
		QRCode:         qr,
	}, nil
}

func (s *imageService) Delete(ctx context.Context, actor *domain.User, imageID int64) error {
	image, err := s.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image.UserID != actor.ID && !actor.Role.CanModerate() {
		return apperrors.NewForbiddenError("Operation forbidden")
	}

	if err := s.imageRepo.DeleteImage(ctx, imageID); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if objectName := utils.ObjectNameFromURL(image.URL); objectName != "" {
		if err := s.storageSvc.Delete(ctx, objectName); err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("failed to delete stored object", slog.String("object", objectName), slog.String("error", err.Error()))
		}
	}
	return nil
}
