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

type CreatorHandler struct {
	creatorService service.CreatorService
	validator      *validator.Validate
}

func NewCreatorHandler(creatorService service.CreatorService) *CreatorHandler {
	return &CreatorHandler{
		creatorService: creatorService,
		validator:      validator.New(),
	}
}

func (h *CreatorHandler) ReserveHandle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ReserveHandleRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)

			return
		}

		if req.Email == "" || req.Handle == "" {
			response.Error(w, appErrors.ValidationError("Email and handle are required").WithReason("missing"))

			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, err)

			return
		}

		handle, err := h.creatorService.ReserveHandle(r.Context(), &req)
		if err != nil {
			logger.Error("Handle reservation failed", slog.String("handle", req.Handle), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Handle reserved", slog.String("handle", handle))
		response.Success(w, http.StatusCreated, map[string]string{"handle": handle})
	}
}

func (h *CreatorHandler) SaveProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SaveProfileRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)

			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, err)

			return
		}

		if err := h.creatorService.SaveProfile(r.Context(), &req); err != nil {
			logger.Error("Profile save failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"saved": true})
	}
}

func (h *CreatorHandler) GetPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		handle := r.PathValue("handle")
		if handle == "" {
			response.Error(w, appErrors.ValidationError("Handle is required").WithReason("missing"))

			return
		}

		creator, err := h.creatorService.GetPage(r.Context(), handle)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, creator)
	}
}
