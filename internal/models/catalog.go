package models

import (
	"fmt"
	"strings"
)

// CatalogQuery is the full set of parameters for one catalog fetch. Category
// and search are conjunctive; Page is 1-indexed.
type CatalogQuery struct {
	BrandID  string `json:"brand_id" validate:"required,uuid"`
	Category string `json:"category"`
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// Normalized returns a copy with the defaults applied: empty category becomes
// the wildcard, page numbers below 1 become 1, and a missing page size falls
// back to defaultPageSize.
func (q CatalogQuery) Normalized(defaultPageSize int) CatalogQuery {
	if q.Category == "" {
		q.Category = CategoryAll
	}

	if q.Page < 1 {
		q.Page = 1
	}

	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}

	q.Search = strings.TrimSpace(q.Search)

	return q
}

// CacheKey is the cache key suffix for this query, stable for equal query
// parameters; search is folded to lower case because matching is
// case-insensitive anyway.
func (q CatalogQuery) CacheKey() string {
	return fmt.Sprintf("%s:%s:%s:%d:%d", q.BrandID, q.Category, strings.ToLower(q.Search), q.Page, q.PageSize)
}

// CatalogPage is one page of catalog results plus the total matching row
// count the pagination state is derived from.
type CatalogPage struct {
	Products   []*Product `json:"products"`
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// PageCount derives the page count as ceil(totalCount/pageSize), clamped to a
// minimum of 1 so an empty result still reports page 1 of 1.
func PageCount(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}

	pages := (totalCount + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}

	return pages
}
