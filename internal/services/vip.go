package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/leaflane/storefront-platform/internal/api/middleware"
	"github.com/leaflane/storefront-platform/internal/cache"
	appErrors "github.com/leaflane/storefront-platform/internal/errors"
	"github.com/leaflane/storefront-platform/internal/models"
	repository "github.com/leaflane/storefront-platform/internal/repositories"
)

type VIPService interface {
	ValidateCode(ctx context.Context, code string) (*models.VIPPass, error)
}

type vipService struct {
	repo      repository.VIPRepository
	passCache cache.Cache
}

func NewVIPService(repo repository.VIPRepository, passCache cache.Cache) VIPService {
	return &vipService{repo: repo, passCache: passCache}
}

// ValidateCode resolves a VIP pass and checks it is still usable. The expiry
// check always runs against the clock, even for cached passes, so a pass
// cached while valid still fails once its expiry goes by.
func (s *vipService) ValidateCode(ctx context.Context, code string) (*models.VIPPass, error) {

	logger := middleware.LoggerFromContext(ctx)

	if code == "" {
		return nil, appErrors.ValidationError("VIP code is required").WithReason("missing_code")
	}

	pass, found := s.cachedPass(ctx, code)

	if !found {
		var err error

		pass, err = s.repo.GetPassByCode(ctx, code)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.NotFoundError("VIP code not recognised").WithReason("invalid")
			}

			return nil, appErrors.DatabaseError("Failed to look up VIP code").WithError(err)
		}

		key := cache.Key(cache.VIPKeyPrefix, code)

		if s.passCache != nil {
			if err := s.passCache.Set(ctx, key, pass, 0); err != nil {
				logger.Warn("VIP pass cache write failed", slog.String("key", key), slog.Any("error", err))
			}
		}
	}

	if !pass.Active || pass.Expired(time.Now()) {
		return nil, appErrors.ForbiddenError("VIP code is no longer active").WithReason("inactive")
	}

	return pass, nil
}

func (s *vipService) cachedPass(ctx context.Context, code string) (*models.VIPPass, bool) {
	if s.passCache == nil {
		return nil, false
	}

	logger := middleware.LoggerFromContext(ctx)
	key := cache.Key(cache.VIPKeyPrefix, code)

	var pass models.VIPPass

	found, err := s.passCache.Get(ctx, key, &pass)
	if err != nil {
		logger.Warn("VIP pass cache read failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}

	if !found {
		return nil, false
	}

	return &pass, true
}
