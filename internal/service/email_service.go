package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/karripar/personal-project-s25/internal/config"
)

type EmailService interface {
	SendEngagementEmail(ctx context.Context, toEmail, username, text string) error
}

type emailService struct {
	client *resend.Client
	cfg    *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &emailService{
		client: client,
		cfg:    cfg,
	}
}

func (s *emailService) SendEngagementEmail(ctx context.Context, toEmail, username, text string) error {
	if s.cfg.ResendAPIKey == "" {
		return nil
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #111827;">Hi, %s!</h2>
	<p>%s</p>
	<p style="color: #6b7280; font-size: 13px;">
		You are receiving this because of activity on your account.
	</p>
</body>
</html>`, username, text)

	params := &resend.SendEmailRequest{
		From:    s.cfg.FromEmail,
		To:      []string{toEmail},
		Subject: "New activity on your media",
		Html:    html,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
