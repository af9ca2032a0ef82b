package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leaflane/storefront-platform/internal/api/middleware"
	"github.com/leaflane/storefront-platform/internal/errors"
	"github.com/leaflane/storefront-platform/internal/models"
	repository "github.com/leaflane/storefront-platform/internal/repositories"
)

// Emailer sends transactional mail; satisfied by pkg/sendgrid.
type Emailer interface {
	Send(ctx context.Context, to, subject, plainText, htmlContent string) error
}

type WaitlistService interface {
	Signup(ctx context.Context, req *models.WaitlistSignupRequest) (*models.WaitlistEntry, error)
}

type waitlistService struct {
	repo    repository.WaitlistRepository
	emailer Emailer
}

func NewWaitlistService(repo repository.WaitlistRepository, emailer Emailer) WaitlistService {
	return &waitlistService{repo: repo, emailer: emailer}
}

func (s *waitlistService) Signup(ctx context.Context, req *models.WaitlistSignupRequest) (*models.WaitlistEntry, error) {

	logger := middleware.LoggerFromContext(ctx)

	if req.Email == "" {
		return nil, errors.ValidationError("Email is required").WithReason("missing_email")
	}

	entry := &models.WaitlistEntry{
		Email:     req.Email,
		Name:      optional(req.Name),
		Instagram: optional(req.Instagram),
		RefCode:   optional(req.Ref),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, errors.DatabaseError("Failed to join the waitlist").WithReason("db_error").WithError(err)
	}

	// Confirmation mail is best effort; a mail failure never fails the signup.
	if s.emailer != nil {
		subject := "You're on the list"
		plain := fmt.Sprintf("Thanks for joining the waitlist, %s. We'll be in touch soon.", displayName(entry))
		html := fmt.Sprintf("<p>Thanks for joining the waitlist, <strong>%s</strong>. We'll be in touch soon.</p>", displayName(entry))

		if err := s.emailer.Send(ctx, entry.Email, subject, plain, html); err != nil {
			logger.Warn("Waitlist confirmation email failed", slog.String("email", entry.Email), slog.Any("error", err))
		}
	}

	return entry, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func displayName(entry *models.WaitlistEntry) string {
	if entry.Name != nil && *entry.Name != "" {
		return *entry.Name
	}

	return "friend"
}
