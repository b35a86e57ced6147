package services

import (
	"context"
	"io"
)

// ObjectStorageSvc stores uploaded files and resolves their public URLs.
type ObjectStorageSvc interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	ObjectURL(objectName string) string
}

// EmailSenderSvc delivers transactional mail.
type EmailSenderSvc interface {
	SendConfirmation(ctx context.Context, toEmail, username, emailToken string) error
	SendPasswordReset(ctx context.Context, toEmail, username, resetToken string) error
}
