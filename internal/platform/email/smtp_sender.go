package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/pkg/config"
)

// smtpTimeout bounds the dial and the whole SMTP exchange so a stalled
// relay cannot pin a sender goroutine.
const smtpTimeout = 10 * time.Second

// SMTPSender delivers transactional mail over plain SMTP. Links point at
// the frontend, which calls back into the API with the embedded token.
type SMTPSender struct {
	cfg *config.Config
}

// NewSMTPSender creates a new instance of SMTPSender.
func NewSMTPSender(cfg *config.Config) portssvc.EmailSenderSvc {
	return &SMTPSender{cfg: cfg}
}

// Ensure SMTPSender implements portssvc.EmailSenderSvc
var _ portssvc.EmailSenderSvc = (*SMTPSender)(nil)

func (s *SMTPSender) SendConfirmation(_ context.Context, toEmail, username, emailToken string) error {
	link := fmt.Sprintf("%s/confirm_email/%s", strings.TrimRight(s.cfg.FrontendBaseURL, "/"), emailToken)
	body := fmt.Sprintf("Hi %s,\r\n\r\nWelcome to SnapShare! Please confirm your email address by opening the link below:\r\n\r\n%s\r\n\r\nThe link is valid for %s.\r\n",
		username, link, s.cfg.EmailTokenExpiryDuration)
	return s.send(toEmail, "Confirm your SnapShare email", body)
}

func (s *SMTPSender) SendPasswordReset(_ context.Context, toEmail, username, resetToken string) error {
	link := fmt.Sprintf("%s/reset_password?email=%s&token=%s", strings.TrimRight(s.cfg.FrontendBaseURL, "/"), toEmail, resetToken)
	body := fmt.Sprintf("Hi %s,\r\n\r\nA password reset was requested for your SnapShare account. Open the link below to set a new password:\r\n\r\n%s\r\n\r\nIf you did not request this, you can ignore this email.\r\n",
		username, link)
	return s.send(toEmail, "Reset your SnapShare password", body)
}

func (s *SMTPSender) send(to, subject, body string) error {
	addr := net.JoinHostPort(s.cfg.SMTPHost, s.cfg.SMTPPort)

	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.SMTPFrom)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if err := s.deliver(addr, auth, to, msg.String()); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// deliver speaks the SMTP exchange over a deadline-bound connection.
func (s *SMTPSender) deliver(addr string, auth smtp.Auth, to, msg string) error {
	conn, err := net.DialTimeout("tcp", addr, smtpTimeout)
	if err != nil {
		return err
	}
	if err := conn.SetDeadline(time.Now().Add(smtpTimeout)); err != nil {
		conn.Close()
		return err
	}

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
