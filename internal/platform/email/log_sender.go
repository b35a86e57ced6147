package email

import (
	"context"
	"log/slog"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
)

// LogSender logs mail instead of sending it. Used when no SMTP relay is
// configured, typically in local development.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a new instance of LogSender.
func NewLogSender(logger *slog.Logger) portssvc.EmailSenderSvc {
	return &LogSender{logger: logger}
}

// Ensure LogSender implements portssvc.EmailSenderSvc
var _ portssvc.EmailSenderSvc = (*LogSender)(nil)

func (s *LogSender) SendConfirmation(_ context.Context, toEmail, username, emailToken string) error {
	s.logger.Info("confirmation email (not sent, SMTP disabled)",
		slog.String("to", toEmail),
		slog.String("username", username),
		slog.String("token", emailToken),
	)
	return nil
}

func (s *LogSender) SendPasswordReset(_ context.Context, toEmail, username, resetToken string) error {
	s.logger.Info("password reset email (not sent, SMTP disabled)",
		slog.String("to", toEmail),
		slog.String("username", username),
		slog.String("token", resetToken),
	)
	return nil
}
