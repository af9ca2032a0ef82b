package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leaflane/storefront-platform/internal/cache"
	"github.com/leaflane/storefront-platform/internal/config"
	appErrors "github.com/leaflane/storefront-platform/internal/errors"
	"github.com/leaflane/storefront-platform/internal/models"
	"github.com/leaflane/storefront-platform/internal/repositories/mocks"
	service "github.com/leaflane/storefront-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, value any) (bool, error) {
	ret := m.Called(ctx, key, value)

	return ret.Bool(0), ret.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ret := m.Called(ctx, key, value, ttl)

	return ret.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	ret := m.Called(ctx, key)

	return ret.Error(0)
}

func (m *mockCache) Close() error {
	ret := m.Called()

	return ret.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		Cache:   config.CacheConfig{DefaultTTL: 5 * time.Minute, CatalogTTL: time.Minute},
		Catalog: config.Catalog{PageSize: 6},
	}
}

func TestListBrands(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		brands := []*models.Brand{
			{ID: uuid.New(), Name: "Leaf & Lane", IsActive: true},
			{ID: uuid.New(), Name: "Sundown Gardens", IsActive: true},
		}

		mockBrands := new(mocks.BrandRepository)
		mockBrands.On("ListActiveBrands", ctx).Return(brands, nil).Once()

		catalogService := service.NewCatalogService(new(mocks.ProductRepository), mockBrands, nil, testConfig())

		// Act
		result, err := catalogService.ListBrands(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, brands, result)
		mockBrands.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbError := errors.New("database connection failed")
		mockBrands := new(mocks.BrandRepository)
		mockBrands.On("ListActiveBrands", ctx).Return(nil, dbError).Once()

		catalogService := service.NewCatalogService(new(mocks.ProductRepository), mockBrands, nil, testConfig())

		// Act
		result, err := catalogService.ListBrands(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
		mockBrands.AssertExpectations(t)
	})
}

func TestBrowsePage(t *testing.T) {
	ctx := context.Background()
	brandID := uuid.NewString()

	t.Run("Success - First Page", func(t *testing.T) {
		// Arrange
		products := catalogPage(1, 6, 13).Products
		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("ListProducts", ctx, mock.MatchedBy(func(q models.CatalogQuery) bool {
			return q.BrandID == brandID && q.Page == 1 && q.PageSize == 6 && q.Category == models.CategoryAll
		})).Return(products, 13, nil).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), nil, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, models.CatalogQuery{BrandID: brandID})

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, page)
		assert.Equal(t, 13, page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Products, 6)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Success - Empty Catalog Is Page One Of One", func(t *testing.T) {
		// Arrange
		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("ListProducts", ctx, mock.AnythingOfType("models.CatalogQuery")).
			Return([]*models.Product{}, 0, nil).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), nil, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, models.CatalogQuery{BrandID: brandID})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 0, page.TotalCount)
		assert.Equal(t, 1, page.TotalPages)
		assert.Empty(t, page.Products)
	})

	t.Run("Failure - Missing Brand", func(t *testing.T) {
		// Arrange
		catalogService := service.NewCatalogService(new(mocks.ProductRepository), new(mocks.BrandRepository), nil, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, models.CatalogQuery{})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, page)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "missing_brand", appErr.Reason)
	})

	t.Run("Failure - Unknown Category", func(t *testing.T) {
		// Arrange
		catalogService := service.NewCatalogService(new(mocks.ProductRepository), new(mocks.BrandRepository), nil, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, models.CatalogQuery{BrandID: brandID, Category: "beverages"})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, page)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "invalid_category", appErr.Reason)
	})

	t.Run("Failure - Page Out Of Range", func(t *testing.T) {
		// Arrange
		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("ListProducts", ctx, mock.AnythingOfType("models.CatalogQuery")).
			Return([]*models.Product{}, 13, nil).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), nil, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, models.CatalogQuery{BrandID: brandID, Page: 4})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, page)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Equal(t, "page_out_of_range", appErr.Reason)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbError := errors.New("database connection failed")
		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("ListProducts", ctx, mock.AnythingOfType("models.CatalogQuery")).
			Return(nil, 0, dbError).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), nil, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, models.CatalogQuery{BrandID: brandID})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, page)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
	})
}

func TestBrowsePageCaching(t *testing.T) {
	ctx := context.Background()
	brandID := uuid.NewString()

	query := models.CatalogQuery{BrandID: brandID}
	cacheKey := cache.Key(cache.CatalogKeyPrefix, query.Normalized(6).CacheKey())

	t.Run("Cache Hit Skips The Repository", func(t *testing.T) {
		// Arrange
		cached := catalogPage(1, 6, 13)

		pageCache := new(mockCache)
		pageCache.On("Get", ctx, cacheKey, mock.AnythingOfType("*models.CatalogPage")).
			Run(func(args mock.Arguments) {
				target := args.Get(2).(*models.CatalogPage)
				*target = *cached
			}).Return(true, nil).Once()

		mockProducts := new(mocks.ProductRepository)

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), pageCache, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, query)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, cached.TotalCount, page.TotalCount)
		mockProducts.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
		pageCache.AssertExpectations(t)
	})

	t.Run("Cache Miss Fetches And Stores", func(t *testing.T) {
		// Arrange
		pageCache := new(mockCache)
		pageCache.On("Get", ctx, cacheKey, mock.AnythingOfType("*models.CatalogPage")).Return(false, nil).Once()
		pageCache.On("Set", ctx, cacheKey, mock.AnythingOfType("*models.CatalogPage"), time.Minute).Return(nil).Once()

		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("ListProducts", ctx, mock.AnythingOfType("models.CatalogQuery")).
			Return(catalogPage(1, 6, 13).Products, 13, nil).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), pageCache, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, query)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 13, page.TotalCount)
		pageCache.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Cache Failure Degrades To A Direct Query", func(t *testing.T) {
		// Arrange
		pageCache := new(mockCache)
		pageCache.On("Get", ctx, cacheKey, mock.AnythingOfType("*models.CatalogPage")).
			Return(false, errors.New("redis down")).Once()
		pageCache.On("Set", ctx, cacheKey, mock.AnythingOfType("*models.CatalogPage"), time.Minute).
			Return(errors.New("redis down")).Once()

		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("ListProducts", ctx, mock.AnythingOfType("models.CatalogQuery")).
			Return(catalogPage(1, 6, 13).Products, 13, nil).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), pageCache, testConfig())

		// Act
		page, err := catalogService.BrowsePage(ctx, query)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 13, page.TotalCount)
		pageCache.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Product Found", func(t *testing.T) {
		// Arrange
		productID := uuid.New()
		want := &models.Product{ID: productID, Name: "Sunset OG", Category: models.CategoryFlower, Price: 4500}

		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("GetProductByID", ctx, productID.String()).Return(want, nil).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), nil, testConfig())

		// Act
		product, err := catalogService.GetProduct(ctx, productID.String())

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, want, product)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Unknown ID", func(t *testing.T) {
		// Arrange
		unknownID := uuid.NewString()

		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("GetProductByID", ctx, unknownID).Return(nil, sql.ErrNoRows).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), nil, testConfig())

		// Act
		product, err := catalogService.GetProduct(ctx, unknownID)

		// Assert
		assert.Nil(t, product)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "not_found", appErr.Reason)
	})

	t.Run("Failure - Repository Error", func(t *testing.T) {
		// Arrange
		productID := uuid.NewString()
		dbError := errors.New("connection reset")

		mockProducts := new(mocks.ProductRepository)
		mockProducts.On("GetProductByID", ctx, productID).Return(nil, dbError).Once()

		catalogService := service.NewCatalogService(mockProducts, new(mocks.BrandRepository), nil, testConfig())

		// Act
		_, err := catalogService.GetProduct(ctx, productID)

		// Assert
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
	})
}
