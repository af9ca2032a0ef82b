package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/leaflane/storefront-platform/internal/api/middleware"
	"github.com/leaflane/storefront-platform/internal/models"
	service "github.com/leaflane/storefront-platform/internal/services"
	"github.com/leaflane/storefront-platform/internal/utils"
	"github.com/leaflane/storefront-platform/internal/utils/response"
)

type WaitlistHandler struct {
	waitlistService service.WaitlistService
	validator       *validator.Validate
}

func NewWaitlistHandler(waitlistService service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistService: waitlistService,
		validator:       validator.New(),
	}
}

func (h *WaitlistHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.WaitlistSignupRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)

			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, err)

			return
		}

		entry, err := h.waitlistService.Signup(r.Context(), &req)
		if err != nil {
			logger.Error("Waitlist signup failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Waitlist signup", slog.String("email", entry.Email))
		response.Success(w, http.StatusCreated, entry)
	}
}
