package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/leaflane/storefront-platform/internal/api/middleware"
	appErrors "github.com/leaflane/storefront-platform/internal/errors"
	"github.com/leaflane/storefront-platform/internal/models"
	service "github.com/leaflane/storefront-platform/internal/services"
	"github.com/leaflane/storefront-platform/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListBrands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		brands, err := h.catalogService.ListBrands(r.Context())
		if err != nil {
			logger.Error("Failed to fetch brands", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, brands)
	}
}

// BrowseProducts answers GET /catalog/products?brand=&category=&q=&page=.
func (h *CatalogHandler) BrowseProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		params := r.URL.Query()
		page, _ := strconv.Atoi(params.Get("page"))

		query := models.CatalogQuery{
			BrandID:  params.Get("brand"),
			Category: params.Get("category"),
			Search:   params.Get("q"),
			Page:     page,
		}

		result, err := h.catalogService.BrowsePage(r.Context(), query)
		if err != nil {
			logger.Error("Failed to browse catalog",
				slog.String("brand_id", query.BrandID),
				slog.Int("page", query.Page),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// GetProduct answers GET /catalog/products/{id} with one product's detail.
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, appErrors.ValidationError("Product ID is required").WithReason("missing"))

			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
