package service

import (
	"github.com/leaflane/storefront-platform/internal/models"
)

// BrowserState is the catalog browser's lifecycle state.
type BrowserState int

const (
	BrowserIdle BrowserState = iota
	BrowserLoading
	BrowserLoaded
	BrowserLoadingMore
)

func (s BrowserState) String() string {
	switch s {
	case BrowserIdle:
		return "idle"
	case BrowserLoading:
		return "loading"
	case BrowserLoaded:
		return "loaded"
	case BrowserLoadingMore:
		return "loading_more"
	}

	return "unknown"
}

// FetchRequest is one fetch the event loop must execute against the catalog
// and feed back through Resolve. Token rises monotonically with every issued
// request; Append tells Resolve whether the page extends or replaces the
// displayed set.
type FetchRequest struct {
	Token  uint64
	Query  models.CatalogQuery
	Append bool
}

// Browser turns user input (search text, category tabs, pagination buttons)
// into catalog fetches and manages the page-state transitions. It is
// single-threaded and event-driven: mutating calls return the fetch to run
// (nil when the input is a no-op), and fetch completions come back through
// Resolve. Only the response matching the most recently issued token is
// applied; anything older is discarded, so an out-of-order arrival can never
// overwrite newer state.
type Browser struct {
	pageSize int

	state      BrowserState
	query      models.CatalogQuery
	products   []*models.Product
	totalCount int
	totalPages int
	lastErr    error

	token         uint64
	pendingAppend bool
}

func NewBrowser(brandID string, pageSize int) *Browser {
	return &Browser{
		pageSize: pageSize,
		state:    BrowserIdle,
		query: models.CatalogQuery{
			BrandID:  brandID,
			Category: models.CategoryAll,
			Page:     1,
			PageSize: pageSize,
		},
	}
}

func (b *Browser) State() BrowserState         { return b.state }
func (b *Browser) Query() models.CatalogQuery  { return b.query }
func (b *Browser) Products() []*models.Product { return b.products }
func (b *Browser) Page() int                   { return b.query.Page }
func (b *Browser) TotalPages() int             { return b.totalPages }
func (b *Browser) TotalCount() int             { return b.totalCount }
func (b *Browser) Err() error                  { return b.lastErr }

func (b *Browser) issue(query models.CatalogQuery, append bool, state BrowserState) *FetchRequest {
	b.token++
	b.query = query
	b.pendingAppend = append
	b.state = state

	return &FetchRequest{Token: b.token, Query: query, Append: append}
}

// Start issues the initial fetch for page 1.
func (b *Browser) Start() *FetchRequest {
	query := b.query
	query.Page = 1

	return b.issue(query, false, BrowserLoading)
}

// SetSearch changes the free-text filter. Any change resets the page number
// to 1 and replaces the displayed set; an unchanged value is a no-op.
func (b *Browser) SetSearch(search string) *FetchRequest {
	if search == b.query.Search {
		return nil
	}

	query := b.query
	query.Search = search
	query.Page = 1

	return b.issue(query, false, BrowserLoading)
}

// SetCategory changes the category filter, resetting to page 1.
func (b *Browser) SetCategory(category string) *FetchRequest {
	if category == b.query.Category {
		return nil
	}

	query := b.query
	query.Category = category
	query.Page = 1

	return b.issue(query, false, BrowserLoading)
}

// SetBrand switches the browsing session to another brand, re-running the
// full query from page 1.
func (b *Browser) SetBrand(brandID string) *FetchRequest {
	if brandID == b.query.BrandID {
		return nil
	}

	query := b.query
	query.BrandID = brandID
	query.Page = 1

	return b.issue(query, false, BrowserLoading)
}

// NextPage navigates forward, replacing the displayed set. It is a no-op at
// the last page or while any fetch is still in flight.
func (b *Browser) NextPage() *FetchRequest {
	if b.state != BrowserLoaded || b.query.Page >= b.totalPages {
		return nil
	}

	query := b.query
	query.Page++

	return b.issue(query, false, BrowserLoadingMore)
}

// PrevPage navigates backward; a no-op at page 1.
func (b *Browser) PrevPage() *FetchRequest {
	if b.state != BrowserLoaded || b.query.Page <= 1 {
		return nil
	}

	query := b.query
	query.Page--

	return b.issue(query, false, BrowserLoadingMore)
}

// LoadMore fetches the next page and appends it to the displayed set instead
// of replacing it. Same bound as NextPage.
func (b *Browser) LoadMore() *FetchRequest {
	if b.state != BrowserLoaded || b.query.Page >= b.totalPages {
		return nil
	}

	query := b.query
	query.Page++

	return b.issue(query, true, BrowserLoadingMore)
}

// Retry re-issues the current query after a failure.
func (b *Browser) Retry() *FetchRequest {
	return b.issue(b.query, false, BrowserLoading)
}

// Resolve applies a completed fetch. Responses carrying a token older than
// the most recently issued request are stale and discarded outright; the
// state set by the newer request stays untouched. Failures keep the previous
// displayed set and surface the error, leaving the browser re-enterable.
func (b *Browser) Resolve(token uint64, page *models.CatalogPage, err error) {
	if token != b.token {
		return
	}

	if err != nil {
		b.lastErr = err

		if b.totalPages == 0 {
			b.state = BrowserIdle
		} else {
			b.state = BrowserLoaded
		}

		return
	}

	b.lastErr = nil

	if b.pendingAppend {
		b.products = append(b.products, page.Products...)
	} else {
		b.products = page.Products
	}

	b.totalCount = page.TotalCount
	b.totalPages = models.PageCount(page.TotalCount, b.query.PageSize)
	b.query.Page = page.Page
	b.state = BrowserLoaded
}
