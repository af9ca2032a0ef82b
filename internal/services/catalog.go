package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/leaflane/storefront-platform/internal/api/middleware"
	"github.com/leaflane/storefront-platform/internal/cache"
	"github.com/leaflane/storefront-platform/internal/config"
	appErrors "github.com/leaflane/storefront-platform/internal/errors"
	"github.com/leaflane/storefront-platform/internal/metrics"
	"github.com/leaflane/storefront-platform/internal/models"
	repository "github.com/leaflane/storefront-platform/internal/repositories"
)

type CatalogService interface {
	ListBrands(ctx context.Context) ([]*models.Brand, error)
	BrowsePage(ctx context.Context, query models.CatalogQuery) (*models.CatalogPage, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

type catalogService struct {
	products repository.ProductRepository
	brands   repository.BrandRepository
	cache    cache.Cache
	pageSize int
	cacheTTL config.CacheConfig
}

func NewCatalogService(products repository.ProductRepository, brands repository.BrandRepository, pageCache cache.Cache, cfg *config.Config) CatalogService {
	return &catalogService{
		products: products,
		brands:   brands,
		cache:    pageCache,
		pageSize: cfg.Catalog.PageSize,
		cacheTTL: cfg.Cache,
	}
}

func (s *catalogService) ListBrands(ctx context.Context) ([]*models.Brand, error) {

	brands, err := s.brands.ListActiveBrands(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch brands").WithError(err)
	}

	return brands, nil
}

// BrowsePage resolves one catalog query into one page of products plus the
// derived pagination state. Pages are cached per full query so repeated
// browsing of the same filters stays off Postgres; cache failures degrade to
// a direct query.
func (s *catalogService) BrowsePage(ctx context.Context, query models.CatalogQuery) (*models.CatalogPage, error) {

	logger := middleware.LoggerFromContext(ctx)

	query = query.Normalized(s.pageSize)

	if query.BrandID == "" {
		return nil, appErrors.ValidationError("Brand is required").WithReason("missing_brand")
	}

	if !models.ValidCategoryFilter(query.Category) {
		return nil, appErrors.ValidationError("Unknown category filter").WithReason("invalid_category").WithDetail(query.Category)
	}

	cacheKey := cache.Key(cache.CatalogKeyPrefix, query.CacheKey())

	if s.cache != nil {
		var cached models.CatalogPage

		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warn("Catalog cache read failed", slog.String("key", cacheKey), slog.Any("error", err))
		} else if found {
			metrics.CatalogCacheHits.Inc()
			return &cached, nil
		}

		metrics.CatalogCacheMisses.Inc()
	}

	products, total, err := s.products.ListProducts(ctx, query)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch catalog page").WithError(err)
	}

	totalPages := models.PageCount(total, query.PageSize)

	// An empty catalog still reports page 1 of 1; anything past the end is
	// rejected rather than silently clamped.
	if query.Page > totalPages {
		return nil, appErrors.BadRequestError("Page is out of range").WithReason("page_out_of_range")
	}

	page := &models.CatalogPage{
		Products:   products,
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: totalPages,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, page, s.cacheTTL.CatalogTTL); err != nil {
			logger.Warn("Catalog cache write failed", slog.String("key", cacheKey), slog.Any("error", err))
		}
	}

	return page, nil
}

// GetProduct resolves a single product for the detail view.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithReason("not_found")
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}
