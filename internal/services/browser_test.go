package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/leaflane/storefront-platform/internal/models"
	service "github.com/leaflane/storefront-platform/internal/services"
	"github.com/stretchr/testify/assert"
)

func catalogPage(page, pageSize, total int) *models.CatalogPage {
	count := pageSize
	if remaining := total - (page-1)*pageSize; remaining < count {
		count = remaining
	}

	products := make([]*models.Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, &models.Product{
			ID:       uuid.New(),
			Name:     fmt.Sprintf("Product %d-%d", page, i),
			Category: models.CategoryFlower,
			Price:    1000,
		})
	}

	return &models.CatalogPage{
		Products:   products,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: models.PageCount(total, pageSize),
	}
}

func TestBrowserStartAndPaginate(t *testing.T) {
	brandID := uuid.NewString()

	t.Run("Start Loads Page One", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)

		req := browser.Start()
		assert.NotNil(t, req)
		assert.Equal(t, service.BrowserLoading, browser.State())
		assert.Equal(t, 1, req.Query.Page)
		assert.False(t, req.Append)

		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

		assert.Equal(t, service.BrowserLoaded, browser.State())
		assert.Len(t, browser.Products(), 6)
		assert.Equal(t, 13, browser.TotalCount())
		assert.Equal(t, 3, browser.TotalPages())
		assert.Equal(t, 1, browser.Page())
		assert.NoError(t, browser.Err())
	})

	t.Run("Next And Prev Replace The Displayed Set", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

		req = browser.NextPage()
		assert.NotNil(t, req)
		assert.Equal(t, 2, req.Query.Page)
		assert.Equal(t, service.BrowserLoadingMore, browser.State())

		browser.Resolve(req.Token, catalogPage(2, 6, 13), nil)
		assert.Equal(t, 2, browser.Page())
		assert.Len(t, browser.Products(), 6)

		req = browser.PrevPage()
		assert.NotNil(t, req)
		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)
		assert.Equal(t, 1, browser.Page())
	})

	t.Run("Pagination Is Bounded", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, catalogPage(1, 6, 5), nil)

		assert.Equal(t, 1, browser.TotalPages())
		assert.Nil(t, browser.NextPage())
		assert.Nil(t, browser.PrevPage())
		assert.Nil(t, browser.LoadMore())
	})

	t.Run("Last Page Is Short", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

		req = browser.NextPage()
		browser.Resolve(req.Token, catalogPage(2, 6, 13), nil)
		req = browser.NextPage()
		assert.NotNil(t, req)
		browser.Resolve(req.Token, catalogPage(3, 6, 13), nil)

		assert.Len(t, browser.Products(), 1)
		assert.Equal(t, 3, browser.Page())
		assert.Nil(t, browser.NextPage())
	})

	t.Run("No Fetch While One Is In Flight", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

		req = browser.NextPage()
		assert.NotNil(t, req)

		// Still waiting on page 2; further pagination is ignored.
		assert.Nil(t, browser.NextPage())
		assert.Nil(t, browser.PrevPage())
	})
}

func TestBrowserFilters(t *testing.T) {
	brandID := uuid.NewString()

	t.Run("Search Change Resets To Page One", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

		req = browser.NextPage()
		browser.Resolve(req.Token, catalogPage(2, 6, 13), nil)

		req = browser.SetSearch("og")
		assert.NotNil(t, req)
		assert.Equal(t, 1, req.Query.Page)
		assert.Equal(t, "og", req.Query.Search)
		assert.False(t, req.Append)

		browser.Resolve(req.Token, catalogPage(1, 6, 2), nil)
		assert.Len(t, browser.Products(), 2)
		assert.Equal(t, 1, browser.TotalPages())
	})

	t.Run("Unchanged Filter Is A No-Op", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

		assert.Nil(t, browser.SetSearch(""))
		assert.Nil(t, browser.SetCategory(models.CategoryAll))
		assert.Nil(t, browser.SetBrand(brandID))
	})

	t.Run("Category Change Issues A Fresh Fetch", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

		req = browser.SetCategory(string(models.CategoryEdibles))
		assert.NotNil(t, req)
		assert.Equal(t, string(models.CategoryEdibles), req.Query.Category)
		assert.Equal(t, 1, req.Query.Page)
	})
}

func TestBrowserStaleResponses(t *testing.T) {
	brandID := uuid.NewString()

	t.Run("Older Token Is Discarded", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)

		first := browser.Start()
		second := browser.SetSearch("og")

		// The slow first response lands after the newer request was issued.
		browser.Resolve(first.Token, catalogPage(1, 6, 13), nil)
		assert.Equal(t, service.BrowserLoading, browser.State())
		assert.Empty(t, browser.Products())

		browser.Resolve(second.Token, catalogPage(1, 6, 2), nil)
		assert.Equal(t, service.BrowserLoaded, browser.State())
		assert.Len(t, browser.Products(), 2)
		assert.Equal(t, "og", browser.Query().Search)
	})

	t.Run("Stale Error Is Discarded Too", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)

		first := browser.Start()
		second := browser.SetSearch("og")

		browser.Resolve(first.Token, nil, errors.New("timeout"))
		assert.NoError(t, browser.Err())

		browser.Resolve(second.Token, catalogPage(1, 6, 2), nil)
		assert.Equal(t, service.BrowserLoaded, browser.State())
	})
}

func TestBrowserErrors(t *testing.T) {
	brandID := uuid.NewString()

	t.Run("Initial Failure Returns To Idle", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)

		req := browser.Start()
		browser.Resolve(req.Token, nil, errors.New("connection refused"))

		assert.Equal(t, service.BrowserIdle, browser.State())
		assert.Error(t, browser.Err())
		assert.Empty(t, browser.Products())
	})

	t.Run("Failure After A Loaded Page Keeps The Displayed Set", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

		req = browser.NextPage()
		browser.Resolve(req.Token, nil, errors.New("timeout"))

		assert.Equal(t, service.BrowserLoaded, browser.State())
		assert.Error(t, browser.Err())
		assert.Len(t, browser.Products(), 6)
	})

	t.Run("Retry Re-Issues The Current Query", func(t *testing.T) {
		browser := service.NewBrowser(brandID, 6)
		req := browser.Start()
		browser.Resolve(req.Token, nil, errors.New("connection refused"))

		retry := browser.Retry()
		assert.NotNil(t, retry)
		assert.Greater(t, retry.Token, req.Token)
		assert.Equal(t, service.BrowserLoading, browser.State())

		browser.Resolve(retry.Token, catalogPage(1, 6, 13), nil)
		assert.NoError(t, browser.Err())
		assert.Len(t, browser.Products(), 6)
	})
}

func TestBrowserLoadMore(t *testing.T) {
	brandID := uuid.NewString()

	browser := service.NewBrowser(brandID, 6)
	req := browser.Start()
	browser.Resolve(req.Token, catalogPage(1, 6, 13), nil)

	req = browser.LoadMore()
	assert.NotNil(t, req)
	assert.True(t, req.Append)
	assert.Equal(t, 2, req.Query.Page)

	browser.Resolve(req.Token, catalogPage(2, 6, 13), nil)
	assert.Len(t, browser.Products(), 12)
	assert.Equal(t, 2, browser.Page())

	req = browser.LoadMore()
	assert.NotNil(t, req)
	browser.Resolve(req.Token, catalogPage(3, 6, 13), nil)
	assert.Len(t, browser.Products(), 13)
	assert.Nil(t, browser.LoadMore())
}
