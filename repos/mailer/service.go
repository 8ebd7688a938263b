package mailer

import (
	"context"
	"fmt"
	"os"

	resend "github.com/resend/resend-go/v2"
	"golang.org/x/xerrors"
)

// Service sends operator notifications through Resend.
type Service struct {
	client *resend.Client
}

// NewService creates a mailer using the RESEND_KEY from the environment.
func NewService() *Service {
	resendKey := os.Getenv("RESEND_KEY")
	return &Service{
		client: resend.NewClient(resendKey),
	}
}

// SendAdminWelcome notifies a freshly created admin account. Callers treat a
// failure as log-worthy, never fatal.
func (s *Service) SendAdminWelcome(ctx context.Context, email string) error {
	body := fmt.Sprintf("<p>Admin access for the Vienna Sultans back office is ready for %s.</p>", email)
	params := &resend.SendEmailRequest{
		From:    "onboarding@resend.dev",
		To:      []string{email},
		Subject: "Vienna Sultans admin account",
		Html:    body,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return xerrors.Errorf("send welcome mail: %w", err)
	}
	return nil
}
