package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/leaflane/storefront-platform/internal/api/middleware"
	appErrors "github.com/leaflane/storefront-platform/internal/errors"
	"github.com/leaflane/storefront-platform/internal/models"
	service "github.com/leaflane/storefront-platform/internal/services"
	"github.com/leaflane/storefront-platform/internal/utils"
	"github.com/leaflane/storefront-platform/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// sessionID extracts the browsing session the cart is keyed on. Carts are
// anonymous; the header is the only identity there is.
func sessionID(r *http.Request) (string, error) {
	id := r.Header.Get("X-Session-ID")
	if id == "" {
		return "", appErrors.ValidationError("Session ID is required").WithReason("missing_session")
	}

	return id, nil
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		summary, err := h.cartService.Summary(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.CartLineRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)

			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, err)

			return
		}

		summary, err := h.cartService.AddUnit(r.Context(), session, req.ProductID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.CartLineRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)

			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, err)

			return
		}

		summary, err := h.cartService.RemoveUnit(r.Context(), session, req.ProductID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, err := sessionID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		order, err := h.cartService.Checkout(r.Context(), session)
		if err != nil {
			logger.Error("Checkout failed", slog.String("session_id", session), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Checkout submitted",
			slog.String("session_id", session),
			slog.Int("item_count", order.ItemCount),
			slog.Int64("total", order.Total))
		response.Success(w, http.StatusOK, order)
	}
}
