package service

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"

	appErrors "github.com/leaflane/storefront-platform/internal/errors"
	"github.com/leaflane/storefront-platform/internal/models"
	repository "github.com/leaflane/storefront-platform/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CreatorService interface {
	ReserveHandle(ctx context.Context, req *models.ReserveHandleRequest) (string, error)
	SaveProfile(ctx context.Context, req *models.SaveProfileRequest) error
	GetPage(ctx context.Context, handle string) (*models.Creator, error)
}

type creatorService struct {
	repo      repository.CreatorRepository
	sanitizer *bluemonday.Policy
}

func NewCreatorService(repo repository.CreatorRepository) CreatorService {
	// Profile text is rendered on public pages; strip all markup.
	return &creatorService{repo: repo, sanitizer: bluemonday.StrictPolicy()}
}

func (s *creatorService) ReserveHandle(ctx context.Context, req *models.ReserveHandleRequest) (string, error) {

	handle := strings.ToLower(strings.TrimSpace(req.Handle))

	exists, err := s.repo.HandleExists(ctx, handle)
	if err != nil {
		return "", appErrors.DatabaseError("Failed to check handle availability").WithError(err)
	}

	if exists {
		return "", appErrors.DuplicateEntryError("Handle is already taken").WithReason("handle_taken")
	}

	reserved, err := s.repo.ReserveHandle(ctx, req.Email, handle)
	if err != nil {
		return "", appErrors.DatabaseError("Failed to reserve handle").WithReason("db_error").WithError(err)
	}

	return reserved, nil
}

func (s *creatorService) SaveProfile(ctx context.Context, req *models.SaveProfileRequest) error {

	profile := req.Profile
	profile.DisplayName = s.sanitizer.Sanitize(profile.DisplayName)
	profile.Bio = s.sanitizer.Sanitize(profile.Bio)

	for i, link := range profile.Links {
		profile.Links[i].Title = s.sanitizer.Sanitize(link.Title)

		parsed, err := url.Parse(link.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return appErrors.ValidationError("Link URLs must be http or https").WithReason("invalid_link").WithDetail(link.URL)
		}
	}

	err := s.repo.UpdateProfile(ctx, req.Email, &profile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Creator not found").WithReason("not_found")
		}

		return appErrors.DatabaseError("Failed to save profile").WithReason("db_error").WithError(err)
	}

	return nil
}

func (s *creatorService) GetPage(ctx context.Context, handle string) (*models.Creator, error) {

	creator, err := s.repo.GetByHandle(ctx, strings.ToLower(strings.TrimSpace(handle)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Creator not found").WithReason("not_found")
		}

		return nil, appErrors.DatabaseError("Failed to fetch creator page").WithError(err)
	}

	return creator, nil
}
